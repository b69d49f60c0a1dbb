package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/ofast-team/backend/httpjson"
	"github.com/ofast-team/backend/user"
)

func (httpserver *HttpServer) registerWithEmail(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Username string `json:"username"`
	}
	if err := decodeJsonBody(r, &request); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	u, err := httpserver.userSrvc.Register(r.Context(), user.RegisterParams{
		Email:    request.Email,
		Password: request.Password,
		Username: request.Username,
	})
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteJson(w, http.StatusCreated, map[string]string{
		"general": "User Created",
		"userId":  u.UID,
	})
}

func (httpserver *HttpServer) loginWithEmail(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJsonBody(r, &request); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	res, err := httpserver.userSrvc.Login(r.Context(), request.Email, request.Password)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, map[string]string{
		"userId": res.UID,
		"token":  res.Token,
	})
}

func (httpserver *HttpServer) getUserData(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	var request struct {
		UID string `json:"uid"`
	}
	if err := decodeJsonBody(r, &request); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	u, err := httpserver.userSrvc.GetUserData(r.Context(), request.UID)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, u)
}

func (httpserver *HttpServer) updateUserData(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	var request struct {
		UID      string  `json:"uid"`
		Email    *string `json:"email"`
		Username *string `json:"username"`
		Name     *string `json:"name"`
		School   *string `json:"school"`
	}
	if err := decodeJsonBody(r, &request); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}
	if err := checkCaller(r, request.UID); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	res, err := httpserver.userSrvc.UpdateUserData(r.Context(), user.UpdateParams{
		UID:      request.UID,
		Email:    request.Email,
		Username: request.Username,
		Name:     request.Name,
		School:   request.School,
	})
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, res)
}
