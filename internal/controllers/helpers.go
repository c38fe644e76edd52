package controllers

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/motix/motix/internal/dtos"
)

var validate = newValidator()

// newValidator reports field names from json tags so validation messages
// match the wire format ("sectorId is required", not "SectorID ...").
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validationMessage(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return fmt.Sprintf("%s is required", errs[0].Field())
	}
	return "invalid payload"
}

// parsePaging reads page/pageSize query params; anything unparsable
// falls back to the defaults.
func parsePaging(r *http.Request) dtos.PagingParams {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		page = 1
	}
	pageSize, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if err != nil {
		pageSize = dtos.DefaultPageSize
	}
	return dtos.NewPagingParams(page, pageSize)
}

// pathID parses the {id} route var. A malformed id behaves like an
// unknown one (route-constraint semantics), so callers 404.
func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	return id, err == nil
}
