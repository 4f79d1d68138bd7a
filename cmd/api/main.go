package main

import (
	"fmt"
	"net/http"

	"github.com/shiftlens/overlap-backend-go/internal/config"
	appHTTP "github.com/shiftlens/overlap-backend-go/internal/handler/http"
	"github.com/shiftlens/overlap-backend-go/internal/pkg/pdftext"
	"github.com/shiftlens/overlap-backend-go/internal/repository/memory"
	overlapService "github.com/shiftlens/overlap-backend-go/internal/service/overlap"
	scheduleService "github.com/shiftlens/overlap-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	profile, err := scheduleService.ProfileByName(cfg.Parse.Profile)
	if err != nil {
		fmt.Println("Error selecting parse profile:", err)
		return
	}

	scheduleRepo := memory.NewScheduleRepository()
	extractor := pdftext.New()

	schedSvc := scheduleService.NewScheduleService(scheduleRepo, extractor, profile)
	overlapSvc := overlapService.NewOverlapService(scheduleRepo, cfg.Overlap.MaxSelection)

	scheduleHandler := appHTTP.NewScheduleHandler(schedSvc, cfg.Parse.MaxUploadBytes())
	overlapHandler := appHTTP.NewOverlapHandler(overlapSvc)

	router := appHTTP.NewRouter(cfg, scheduleHandler, overlapHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
