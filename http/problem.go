package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/ofast-team/backend/httpjson"
	"github.com/ofast-team/backend/problem"
)

func (httpserver *HttpServer) listProblems(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	problems, err := httpserver.problemSrvc.ListProblems(r.Context())
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, problems)
}

func (httpserver *HttpServer) getProblemData(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	var request struct {
		ProblemID string `json:"problemID"`
	}
	if err := decodeJsonBody(r, &request); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	cases, err := httpserver.problemSrvc.GetProblemData(r.Context(), request.ProblemID)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, struct {
		ProblemID string             `json:"problemID"`
		Data      []problem.TestCase `json:"data"`
	}{
		ProblemID: request.ProblemID,
		Data:      cases,
	})
}

func (httpserver *HttpServer) judgeIsOnline(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	online, err := httpserver.heartbeat.Check(r.Context())
	if err != nil {
		logger.Error("judge heartbeat failed", "error", err)
		httpjson.WriteJson(w, http.StatusInternalServerError,
			map[string]string{"status": "Internal Server Error"})
		return
	}
	if !online {
		httpjson.WriteJson(w, http.StatusBadRequest,
			map[string]string{"status": "The judge is not online."})
		return
	}

	httpjson.WriteSuccessJson(w, map[string]string{"status": "The judge is online"})
}

func (httpserver *HttpServer) helloWorld(w http.ResponseWriter, r *http.Request) {
	httpjson.WriteSuccessJson(w, map[string]string{"str": "Hello World!"})
}
