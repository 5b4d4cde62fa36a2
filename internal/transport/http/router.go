package http

import (
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// NewRouter builds the HTTP routing table. Collection endpoints are
// registered with and without the trailing slash so clients can use either
// form without a redirect.
func NewRouter(products *ProductsHandler, orders *OrdersHandler) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", health).Methods(http.MethodGet)

	r.HandleFunc("/products", products.List).Methods(http.MethodGet)
	r.HandleFunc("/products/", products.List).Methods(http.MethodGet)
	r.HandleFunc("/products", products.Create).Methods(http.MethodPost)
	r.HandleFunc("/products/", products.Create).Methods(http.MethodPost)
	r.HandleFunc("/products/{id}", products.Get).Methods(http.MethodGet)
	r.HandleFunc("/products/{id}", products.Update).Methods(http.MethodPut)
	r.HandleFunc("/products/{id}", products.Delete).Methods(http.MethodDelete)

	r.HandleFunc("/orders", orders.List).Methods(http.MethodGet)
	r.HandleFunc("/orders/", orders.List).Methods(http.MethodGet)
	r.HandleFunc("/orders", orders.Create).Methods(http.MethodPost)
	r.HandleFunc("/orders/", orders.Create).Methods(http.MethodPost)
	r.HandleFunc("/orders/{id}", orders.Get).Methods(http.MethodGet)
	r.HandleFunc("/orders/{id}", orders.Update).Methods(http.MethodPut)
	r.HandleFunc("/orders/{id}", orders.Delete).Methods(http.MethodDelete)

	return logMiddleware(r)
}

func health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func logMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.WithFields(log.Fields{
			"method":     r.Method,
			"url":        r.URL.Path,
			"remoteAddr": r.RemoteAddr,
		}).Info("handling request")
		h.ServeHTTP(w, r)
	})
}
