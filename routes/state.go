package routes

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/victorjacobs/go-ensy/bridge"
)

// State serves the last state snapshot received from the unit.
func State(b *bridge.Bridge) func(http.ResponseWriter, *http.Request, httprouter.Params) {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		state, ok := b.State()
		if !ok {
			http.Error(w, "no state received from the unit yet", http.StatusServiceUnavailable)
			return
		}

		if marshaled, err := json.Marshal(state); err != nil {
			log.Printf("error marshaling: %v", err)
		} else {
			w.Header().Set("Content-Type", "application/json")
			w.Write(marshaled)
		}
	}
}
