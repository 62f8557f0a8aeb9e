package serializer

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	KindValidation = "validation"
	KindAuth       = "auth"
	KindNotFound   = "not_found"
	KindConflict   = "conflict"
	KindInternal   = "internal"
)

// Response is the single envelope of every JSON answer.
// Error is always !OK, kept for clients that read the legacy flag.
type Response struct {
	Code   int               `json:"code"`
	OK     bool              `json:"ok"`
	Error  bool              `json:"error"`
	Kind   string            `json:"kind,omitempty"`
	Msg    string            `json:"msg"`
	Data   interface{}       `json:"data,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
	Detail string            `json:"detail,omitempty"`
}

// OK
func OK(msg string, data interface{}) Response {
	return Response{Code: http.StatusOK, OK: true, Msg: msg, Data: data}
}

// Created
func Created(msg string, data interface{}) Response {
	return Response{Code: http.StatusCreated, OK: true, Msg: msg, Data: data}
}

// Err
func Err(errCode int, kind, msg string, err error) Response {
	res := Response{
		Code:  errCode,
		Error: true,
		Kind:  kind,
		Msg:   msg,
	}
	// development mode, show error detail
	if err != nil && gin.Mode() != gin.ReleaseMode {
		res.Detail = fmt.Sprintf("%+v", err)
	}
	return res
}

// DBErr
func DBErr(msg string, err error) Response {
	if msg == "" {
		msg = "Une erreur interne est survenue."
	}
	return Err(http.StatusInternalServerError, KindInternal, msg, err)
}

// ParamErr
func ParamErr(msg string, err error) Response {
	if msg == "" {
		msg = "Paramètre invalide."
	}
	return Err(http.StatusBadRequest, KindValidation, msg, err)
}

// ValidationErr
func ValidationErr(msg string, fields map[string]string) Response {
	if msg == "" {
		msg = "Les données fournies sont invalides."
	}
	res := Err(http.StatusUnprocessableEntity, KindValidation, msg, nil)
	res.Fields = fields
	return res
}

// AuthErr
func AuthErr(msg string) Response {
	if msg == "" {
		msg = "Non authentifié."
	}
	return Err(http.StatusUnauthorized, KindAuth, msg, nil)
}

// NotFoundErr
func NotFoundErr(msg string) Response {
	if msg == "" {
		msg = "Ressource introuvable."
	}
	return Err(http.StatusNotFound, KindNotFound, msg, nil)
}

// ConflictErr
func ConflictErr(msg string, err error) Response {
	if msg == "" {
		msg = "Cette ressource existe déjà."
	}
	return Err(http.StatusConflict, KindConflict, msg, err)
}
