// Command chi serves the objcase example with a chi router and a
// middleware that rejects request bodies whose keys are not snake_case.
//
// Run:
//
//	cd _example/chi && go run .
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/Gobd/objcase"
	"github.com/go-chi/chi/v5"
)

type Order struct {
	CustomerName string  `json:"customerName"`
	ItemCount    int     `json:"itemCount"`
	Total        float64 `json:"total"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// snakeBodies buffers the request body and checks every key with
// objcase.SnakeCaseKeys before handing the body on.
func snakeBodies(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, err)
			return
		}
		v, err := objcase.Parse(b)
		if err != nil {
			writeError(w, err)
			return
		}
		if err := objcase.Validate(v, objcase.SnakeCaseKeys); err != nil {
			writeError(w, err)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(b))
		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
}

func main() {
	r := chi.NewRouter()

	r.With(snakeBodies).Post("/orders", func(w http.ResponseWriter, r *http.Request) {
		var order Order
		if err := objcase.DecodeSnakeToCamel(r.Body, &order); err != nil {
			writeError(w, err)
			return
		}
		v, err := objcase.Of(order)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(objcase.CamelObjectToSnake(v))
	})

	fmt.Println("Listening on http://localhost:8080")
	log.Fatal(http.ListenAndServe(":8080", r))
}
