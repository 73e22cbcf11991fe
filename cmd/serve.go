package cmd

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/perahi/songchart/chart"
	"github.com/perahi/songchart/model"
	"github.com/perahi/songchart/theory"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the chart API over HTTP",
	Long:  `Serves POST /render, /transpose and /numbers`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func readChartRequest(r *http.Request) (model.ChartRequest, *chart.Chart, error) {
	var req model.ChartRequest

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return req, nil, err
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return req, nil, err
	}

	c, err := chart.Parse(req.Source, chart.Options{Extensions: req.Extensions})
	if err != nil {
		return req, nil, err
	}
	return req, c, nil
}

func respondChart(w http.ResponseWriter, req model.ChartRequest, c *chart.Chart) {
	c.SetInline(req.Inline)
	json.NewEncoder(w).Encode(model.ChartResponse{Output: c.String()})
}

// Handlers are exported so the e2e tests can drive them through
// httptest without a listening server.

func HandleRender(w http.ResponseWriter, r *http.Request) {
	req, c, err := readChartRequest(r)
	if err != nil {
		writeError(w, 400, err)
		return
	}
	respondChart(w, req, c)
}

func HandleTranspose(w http.ResponseWriter, r *http.Request) {
	req, c, err := readChartRequest(r)
	if err != nil {
		writeError(w, 400, err)
		return
	}
	key, err := theory.ParseScale(req.Key)
	if err != nil {
		writeError(w, 400, err)
		return
	}
	if err := c.TransposeTo(key); err != nil {
		writeError(w, 422, err)
		return
	}
	respondChart(w, req, c)
}

func HandleNumbers(w http.ResponseWriter, r *http.Request) {
	req, c, err := readChartRequest(r)
	if err != nil {
		writeError(w, 400, err)
		return
	}
	if err := c.ToNumbers(); err != nil {
		writeError(w, 422, err)
		return
	}
	respondChart(w, req, c)
}

// requestID tags every request's log lines with a fresh uuid.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		logrus.WithFields(logrus.Fields{
			"request_id": id,
			"method":     r.Method,
			"path":       r.URL.Path,
		}).Info("handling request")
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}

func serve() error {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/render", HandleRender).Methods("POST")
	router.HandleFunc("/transpose", HandleTranspose).Methods("POST")
	router.HandleFunc("/numbers", HandleNumbers).Methods("POST")

	handler := cors.Default().Handler(requestID(router))
	logrus.Infof("listening on %s", cfg.HTTPAddr)
	return http.ListenAndServe(cfg.HTTPAddr, handler)
}
