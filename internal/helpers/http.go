package helpers

import (
	"encoding/json"
	"net/http"

	"github.com/isometry/tag-enforcer/internal/models"
)

type httpResponse struct {
	Message string         `json:"message"`
	Error   string         `json:"error,omitempty"`
	Result  *models.Result `json:"result,omitempty"`
}

// RespondHTTP writes the response as a JSON document, including the error text if err is non-nil.
func RespondHTTP(response models.Response, err error, rw http.ResponseWriter) {
	hR := httpResponse{
		Message: response.Body,
		Result:  response.Result,
	}
	if err != nil {
		hR.Error = err.Error()
	}

	respBody, _ := json.Marshal(hR)
	statusCode := response.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	for k, v := range response.Headers {
		rw.Header().Set(k, v)
	}
	rw.WriteHeader(statusCode)
	_, _ = rw.Write(respBody)
}
