// Command example serves an endpoint that accepts snake_case JSON, works
// with camelCase Go types internally and answers in snake_case again. The
// camelCase OpenAPI document is served at /docs.json.
//
// Run:
//
//	go run ./_example
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/Gobd/objcase"
	"github.com/Gobd/objcase/openapi"
	"github.com/Gobd/objcase/transform"
)

// Order is a sample request/response type.
type Order struct {
	CustomerName string  `json:"customerName"`
	ItemCount    int     `json:"itemCount"`
	Total        float64 `json:"total"`
}

// ErrorResponse is a standard error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

func main() {
	doc := openapi.DocBase("Example API", "Demonstrates objcase", "0.1.0")
	err := openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
		Summary: "Create an order",
		Request: Order{},
		Responses: map[string]openapi.Response{
			"200": {Desc: "Created order", Bodies: []any{Order{}}},
			"400": {Desc: "Bad request", Bodies: []any{ErrorResponse{}}},
		},
		KeyCase: transform.CamelToSnake,
		Rules:   []objcase.Rule{objcase.SnakeCaseKeys},
	})
	if err != nil {
		log.Fatal(err)
	}

	http.HandleFunc("/docs.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(doc)
	})

	http.HandleFunc("/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var order Order
		if err := objcase.DecodeSnakeToCamel(r.Body, &order); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, order)
	})

	fmt.Println("Listening on http://localhost:8080")
	log.Fatal(http.ListenAndServe(":8080", nil))
}

// writeJSON encodes body with snake_case keys.
func writeJSON(w http.ResponseWriter, status int, body any) {
	v, err := objcase.Of(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(objcase.CamelObjectToSnake(v))
}
