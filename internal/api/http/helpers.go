package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// pathID extracts the numeric {id} path variable. A zero return with false
// means the response is already written.
func pathID(w http.ResponseWriter, r *http.Request) (int32, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		respondMessage(w, http.StatusBadRequest, "id inválido")
		return 0, false
	}
	return int32(id), true
}

// queryID parses an optional numeric query parameter; absent means 0.
func queryID(r *http.Request, name string) int32 {
	val := r.URL.Query().Get(name)
	if val == "" {
		return 0
	}
	id, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return int32(id)
}
