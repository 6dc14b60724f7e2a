package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"handpong/commentary"
	"handpong/config"
	"handpong/network"
	"handpong/room"
)

func main() {
	cfg := config.Load()

	var gen commentary.Generator
	if cfg.Commentary != "off" {
		gen = commentary.NewCanned(time.Now().UnixNano())
	}

	manager := room.NewManager(gen)
	srv := network.NewServer(manager)

	r := mux.NewRouter()
	r.HandleFunc("/api/rooms", srv.HandleCreateRoom).Methods("POST")
	r.HandleFunc("/api/rooms", srv.HandleListRooms).Methods("GET")
	r.HandleFunc("/ws/{code}", srv.HandleWS)

	log.Printf("listening on %s (ws endpoint: /ws/{code})", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, r))
}
