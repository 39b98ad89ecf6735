package public

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.mongodb.org/mongo-driver/mongo"

	intakeapp "github.com/formgate/formgate-services/api/internal/intake/application"
)

var submissionOutcomes = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "form_submissions_total",
		Help: "Total number of form submission attempts by outcome",
	},
	[]string{"outcome"},
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger              *log.Logger
	submissionCommands  intakeapp.SubmissionCommandService
	validate            *validator.Validate
	httpClient          *http.Client
	notifyEndpoint      string
	notifyDestination   string
	failedNotifications *mongo.Collection
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger              *log.Logger
	SubmissionCommands  intakeapp.SubmissionCommandService
	HTTPClient          *http.Client
	NotifyEndpoint      string
	NotifyDestination   string
	FailedNotifications *mongo.Collection
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:              cfg.Logger,
		submissionCommands:  cfg.SubmissionCommands,
		validate:            validator.New(validator.WithRequiredStructEnabled()),
		httpClient:          cfg.HTTPClient,
		notifyEndpoint:      cfg.NotifyEndpoint,
		notifyDestination:   cfg.NotifyDestination,
		failedNotifications: cfg.FailedNotifications,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/submissions", h.submissionCreateHandler())
}
