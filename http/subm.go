package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/ofast-team/backend/httpjson"
	"github.com/ofast-team/backend/subm"
)

func (httpserver *HttpServer) submit(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	type submitRequest struct {
		UID         string   `json:"uid"`
		SourceCode  string   `json:"source_code"`
		LanguageID  string   `json:"language_id"`
		Inputs      []string `json:"inputs"`
		Outputs     []string `json:"outputs"`
		ProblemID   string   `json:"problem_id"`
		TimeLimit   int      `json:"time_limit"`
		MemoryLimit int      `json:"memory_limit"`
	}

	var request submitRequest
	if err := decodeJsonBody(r, &request); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}
	if err := checkCaller(r, request.UID); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	id, err := httpserver.submSrvc.Submit(r.Context(), subm.SubmitParams{
		UID:         request.UID,
		SourceCode:  request.SourceCode,
		Language:    request.LanguageID,
		Inputs:      request.Inputs,
		Outputs:     request.Outputs,
		ProblemID:   request.ProblemID,
		TimeLimit:   request.TimeLimit,
		MemoryLimit: request.MemoryLimit,
	})
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteJson(w, http.StatusCreated, map[string]string{"token": id})
}

func (httpserver *HttpServer) getVerdict(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	var request struct {
		Token string `json:"token"`
	}
	if err := decodeJsonBody(r, &request); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	submission, err := httpserver.submSrvc.GetVerdict(r.Context(), request.Token)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, submission)
}

type briefProblemSubms struct {
	ProblemID   string `json:"problemId"`
	IsSubmitted bool   `json:"isSubmitted"`
	IsAccepted  bool   `json:"isAccepted"`
}

type fullProblemSubms struct {
	ProblemID      string            `json:"problemId"`
	AllSubmissions []subm.Submission `json:"allSubmissions"`
}

func (httpserver *HttpServer) getSubmissions(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	var request struct {
		UID        string   `json:"uid"`
		ProblemIDs []string `json:"problemIds"`
		IsBrief    bool     `json:"isBrief"`
	}
	if err := decodeJsonBody(r, &request); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}
	if err := checkCaller(r, request.UID); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	groups, err := httpserver.submSrvc.ListUserSubmissions(r.Context(),
		request.UID, request.ProblemIDs, request.IsBrief)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	if request.IsBrief {
		response := make([]briefProblemSubms, len(groups))
		for i, g := range groups {
			response[i] = briefProblemSubms{
				ProblemID:   g.ProblemID,
				IsSubmitted: g.IsSubmitted,
				IsAccepted:  g.IsAccepted,
			}
		}
		httpjson.WriteSuccessJson(w, response)
		return
	}

	response := make([]fullProblemSubms, len(groups))
	for i, g := range groups {
		response[i] = fullProblemSubms{
			ProblemID:      g.ProblemID,
			AllSubmissions: g.Submissions,
		}
	}
	httpjson.WriteSuccessJson(w, response)
}
