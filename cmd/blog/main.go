//go:generate swag init --generalInfo internal/blog/http/router.go --dir ../../ --output ../../api/blog --outputTypes go --parseDependency --parseInternal

package main

import (
	"log"

	"github.com/aussiebroadwan/quill/internal/blog/app"
)

func main() {
	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
