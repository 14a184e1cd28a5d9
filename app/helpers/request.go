package helpers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Rakhulsr/go-marketplace/app/errs"
	"github.com/Rakhulsr/go-marketplace/app/models/other"
	"github.com/gorilla/mux"
)

const maxJSONBody = 1 << 20

// DecodeJSON reads a single JSON object into dst. Unknown fields are rejected.
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errs.Validation("request body is empty")
		}
		return errs.Validation("malformed JSON body: %v", err)
	}
	return nil
}

func PathID(r *http.Request) (uint, error) {
	return other.ParseID(mux.Vars(r)["id"])
}
