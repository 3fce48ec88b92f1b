package main

import (
	"log"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"github.com/bhavanishankera7/todo-list-app/internal/config"
	"github.com/bhavanishankera7/todo-list-app/internal/database"
	"github.com/bhavanishankera7/todo-list-app/internal/token"
	"github.com/bhavanishankera7/todo-list-app/web"
)

func main() {
	envFile := flag.String("env-file", ".env", "path to the environment file")
	addr := flag.String("addr", "", "listen address, overrides PORT")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		log.Printf("No env file loaded (%s): %v", *envFile, err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Successfully connected to PostgreSQL database!")

	if err := db.InitSchema(); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	router := web.NewRouter(db, token.New([]byte(cfg.JWTSecret), cfg.TokenLifetime))

	listen := *addr
	if listen == "" {
		listen = ":" + cfg.Port
	}
	log.Printf("Server listening on %s", listen)
	log.Fatal(router.Run(listen))
}
