package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/ADITYAKUMARSINGH16/ai-judicial/api"
	"github.com/ADITYAKUMARSINGH16/ai-judicial/api/scheduler"
	"github.com/ADITYAKUMARSINGH16/ai-judicial/assistant"
	"github.com/ADITYAKUMARSINGH16/ai-judicial/config"
	"github.com/ADITYAKUMARSINGH16/ai-judicial/court"
	"github.com/ADITYAKUMARSINGH16/ai-judicial/models"
	"github.com/ADITYAKUMARSINGH16/ai-judicial/stores"
)

// App stores the router, the stores and the responder, so it can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	Directory *stores.Directory
	Cases     *stores.CaseStore
	Ledger    *stores.Ledger
	Responder assistant.Responder
	Hub       *Hub

	scheduler *scheduler.Scheduler
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()

	p := Principal{Directory: a.Directory}
	c := Case{DB: a.Cases, Hub: a.Hub}
	ai := Assistant{Ledger: a.Ledger, DB: a.Cases, Responder: a.Responder, Timeout: a.Config.GenerateTimeout}
	j := Judge{
		Directory: a.Directory,
		Engine:    court.Engine{Cases: a.Cases, Responder: a.Responder},
		Hub:       a.Hub,
		Timeout:   a.Config.GenerateTimeout,
	}
	s := Stream{DB: a.Cases, Hub: a.Hub}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/signup", api.Middleware(http.HandlerFunc(p.SignupHandler))).Methods("POST")
	apiCreate.Handle("/login", api.Middleware(http.HandlerFunc(p.LoginHandler))).Methods("POST")

	apiCreate.Handle("/case", api.Middleware(http.HandlerFunc(c.CreateCaseHandler))).Methods("POST")
	apiCreate.Handle("/cases", api.Middleware(http.HandlerFunc(c.CasesHandler))).Methods("GET")
	apiCreate.Handle("/case/{case_id}", api.Middleware(http.HandlerFunc(c.CaseByIDHandler))).Methods("GET")
	apiCreate.Handle("/case/{case_id}/timeline", api.Middleware(http.HandlerFunc(c.CaseTimelineHandler))).Methods("GET")
	apiCreate.Handle("/case/{case_id}/message", api.Middleware(http.HandlerFunc(c.CreateMessageHandler))).Methods("POST")

	// responder-backed routes carry the request timeout
	bounded := api.TimeoutMiddleware(a.Config.GenerateTimeout)
	apiCreate.Handle("/case/{case_id}/assistant", bounded(api.Middleware(http.HandlerFunc(ai.AskHandler)))).Methods("POST")
	apiCreate.Handle("/case/{case_id}/assistant", api.Middleware(http.HandlerFunc(ai.HistoryHandler))).Methods("GET")
	apiCreate.Handle("/case/{case_id}/evaluate", bounded(api.Middleware(http.HandlerFunc(j.EvaluateHandler)))).Methods("POST")

	apiCreate.Handle("/case/{case_id}/stream", http.HandlerFunc(s.StreamHandler)).Methods("GET")

	return r
}

// Initialize is invoked by main to build the stores, load seed data and
// create a router
func (a *App) Initialize() error {
	a.Directory = stores.NewDirectory()
	a.Cases = stores.NewCaseStore()
	a.Ledger = stores.NewLedger()
	a.Hub = NewHub()
	if a.Responder == nil {
		a.Responder = assistant.Scripted{}
	}
	if a.Config.GenerateTimeout <= 0 {
		a.Config.GenerateTimeout = config.DefaultGenerateTimeout
	}

	seed, err := config.LoadSeed(a.Config.SeedFile)
	if err != nil {
		zap.S().With(err).Error("failed to load seed data")
		return err
	}
	if err := a.applySeed(seed); err != nil {
		zap.S().With(err).Error("failed to apply seed data")
		return err
	}

	a.initializeRoutes()

	a.scheduler = scheduler.New(a.Cases)
	a.scheduler.Start()
	return nil
}

func (a *App) applySeed(seed *config.SeedData) error {
	principals := make([]models.Principal, 0, len(seed.Principals))
	for _, sp := range seed.Principals {
		role, ok := models.ParseRole(sp.Role)
		if !ok {
			return errors.New("seed principal " + sp.Name + " has unknown role " + sp.Role)
		}
		principals = append(principals, models.Principal{Name: sp.Name, Role: role, Password: sp.Password})
	}
	if err := a.Directory.Seed(principals); err != nil {
		return err
	}
	return a.Cases.Seed(seed.Cases)
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
