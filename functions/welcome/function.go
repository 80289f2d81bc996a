// Package welcome serves the hello payload as an HTTP Cloud Function.
// It lives in its own module, so the payload is declared here rather than
// imported from the service's internal packages.
package welcome

import (
	"encoding/json"
	"net/http"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
)

func init() {
	functions.HTTP("Welcome", welcomeHandler)
}

// Response matches GET /api/v1/hello on the server.
type Response struct {
	Message   string `json:"message"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

var welcome = Response{
	Message:   "Hello from the business logic layer!",
	Status:    "success",
	Timestamp: "2024-01-01T00:00:00Z",
}

func welcomeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	body, err := json.Marshal(welcome)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}
