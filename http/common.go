package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ofast-team/backend/srvcerror"
	"github.com/ofast-team/backend/user/auth"
)

func decodeJsonBody(r *http.Request, dst any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		return srvcerror.ErrInvalidRequest("Invalid JSON body").SetDebug(err)
	}
	return nil
}

const ErrCodeForbidden = "forbidden"

// checkCaller rejects authenticated requests acting on another user's uid.
// Anonymous requests are let through.
func checkCaller(r *http.Request, uid string) error {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil || uid == "" || claims.UID == uid {
		return nil
	}
	return srvcerror.New(ErrCodeForbidden, "Token does not belong to this user").
		SetDebug(fmt.Errorf("token uid %s, request uid %s", claims.UID, uid)).
		SetHttpStatusCode(http.StatusForbidden)
}
