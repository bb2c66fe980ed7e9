package responses

import (
	"net/http"

	"vershash/internal/structs"
)

var (
	Success      = structs.Response{Status: http.StatusOK, Message: "success"}
	Created      = structs.Response{Status: http.StatusCreated, Message: "created"}
	BadRequest   = structs.Response{Status: http.StatusBadRequest, Message: "bad request"}
	Unauthorized = structs.Response{Status: http.StatusUnauthorized, Message: "invalid credentials"}
	NotFound     = structs.Response{Status: http.StatusNotFound, Message: "not found"}
	InternalErr  = structs.Response{Status: http.StatusInternalServerError, Message: "internal server error"}
)
