package main

import (
	"log"

	"gitlab.com/dirk.krummacker/user-form/internal/config"
	"gitlab.com/dirk.krummacker/user-form/internal/handler"
	"gitlab.com/dirk.krummacker/user-form/internal/service"
	"gitlab.com/dirk.krummacker/user-form/internal/store"
)

// Usage example on the command line:
// > PORT=8080 STORE=sqlite DBPATH=users.db GIN_MODE=release GIN_LOGGING=OFF go run main.go
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	userStore, closeStore, err := store.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeStore()

	router := handler.New(service.New(userStore)).Router(cfg.RequestLogging)
	log.Printf("serving the user form on %s with the %s store", cfg.Addr(), cfg.Store)
	if err := router.Run(cfg.Addr()); err != nil {
		log.Println(err)
	}
}
