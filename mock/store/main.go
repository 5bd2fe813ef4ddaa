// Command store serves the resources table over a minimal PostgREST-style
// API for local development of the catalog.
package main

import (
	_ "embed"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"
)

//go:embed data.json
var jsonData []byte

func main() {
	key := os.Getenv("MOCK_STORE_KEY")
	if key == "" {
		key = "dev-anon-key"
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(jsonData, &raw); err != nil {
		log.Fatalf("[Store] invalid data.json: %v", err)
	}
	rows := make([]row, len(raw))
	for i, r := range raw {
		if err := json.Unmarshal(r, &rows[i]); err != nil {
			log.Fatalf("[Store] invalid row %d: %v", i, err)
		}
	}

	http.HandleFunc("/rest/v1/resources", func(w http.ResponseWriter, r *http.Request) {
		// Simulate network latency (50-200ms)
		time.Sleep(time.Duration(50+time.Now().UnixNano()%150) * time.Millisecond)

		w.Header().Set("Content-Type", "application/json")

		if r.Header.Get("apikey") != key || r.Header.Get("Authorization") != "Bearer "+key {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Invalid API key","hint":"Double check your API key."}`))
			log.Printf("[Store] %s %s - 401", r.Method, r.URL.Path)
			return
		}

		f := parseFilter(r.URL.Query())
		out := make([]json.RawMessage, 0, len(raw))
		for i := range rows {
			if f.matches(rows[i]) {
				out = append(out, raw[i])
			}
			if f.limit > 0 && len(out) == f.limit {
				break
			}
		}

		if err := json.NewEncoder(w).Encode(out); err != nil {
			log.Printf("[Store] Write error: %v", err)
		}

		log.Printf("[Store] %s %s?%s - 200 OK (%d rows)", r.Method, r.URL.Path, r.URL.RawQuery, len(out))
	})

	http.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"healthy"}`)); err != nil {
			log.Printf("[Store] Health write error: %v", err)
		}
	})

	log.Println("Mock store running on :8081 (key: " + key + ")")
	server := &http.Server{
		Addr:         ":8081",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}
