package server

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// PriceRoutes is the handler surface the router wires up; the concrete
// implementation lives in server/handlers.
type PriceRoutes interface {
	Scrape(w http.ResponseWriter, r *http.Request)
	GetPrices(w http.ResponseWriter, r *http.Request)
	GetPricesCSV(w http.ResponseWriter, r *http.Request)
	GetPricesChart(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	priceHandler PriceRoutes
	router       *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	priceHandler PriceRoutes,
	router *mux.Router) *Router {
	return &Router{
		priceHandler: priceHandler,
		router:       router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(recoverMiddleware)

	// expects ?date={YYYY-MM-DD} or ?start={YYYY-MM-DD}&end={YYYY-MM-DD}
	r.router.HandleFunc("/v1/scrape", r.priceHandler.Scrape).Methods("POST")

	r.router.HandleFunc("/v1/prices", r.priceHandler.GetPrices).Methods("GET")
	r.router.HandleFunc("/v1/prices/csv", r.priceHandler.GetPricesCSV).Methods("GET")
	r.router.HandleFunc("/v1/prices/chart", r.priceHandler.GetPricesChart).Methods("GET")

	r.router.HandleFunc("/ping", r.priceHandler.Ping).Methods("GET")
}

// recoverMiddleware catches any panic escaping a handler and turns it into a
// single error response; no partial results are written after that point.
func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("Recovered from panic handling %s: %v", r.URL.Path, rec)
				http.Error(w, "An unexpected error occurred", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
