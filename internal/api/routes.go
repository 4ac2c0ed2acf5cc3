package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	moods := api.Group("/moods")
	moods.Get("", handler.GetMoods)
	moods.Get("/trends", handler.GetMoodTrends)
	moods.Get("/:id", handler.GetMood)
	moods.Post("", handler.CreateMood)
	moods.Put("/:id", handler.UpdateMood)
	moods.Delete("/:id", handler.DeleteMood)

	biometrics := api.Group("/biometrics")
	biometrics.Get("", handler.GetBiometrics)
	biometrics.Get("/today", handler.GetTodayBiometrics)
	biometrics.Get("/energy-breakdown", handler.GetEnergyBreakdown)
	biometrics.Post("", handler.UpsertBiometric)

	goals := api.Group("/goals")
	goals.Get("", handler.GetGoals)
	goals.Get("/adjustments", handler.GetGoalAdjustments)
	goals.Get("/:id", handler.GetGoal)
	goals.Post("", handler.CreateGoal)
	goals.Put("/:id", handler.UpdateGoal)
	goals.Delete("/:id", handler.DeleteGoal)
	goals.Post("/:id/tasks/:taskId/toggle", handler.ToggleGoalTask)

	insights := api.Group("/insights")
	insights.Get("", handler.GetInsights)
	insights.Get("/:id", handler.GetInsight)
	insights.Post("*", handler.RejectDerivedMutation)
	insights.Put("*", handler.RejectDerivedMutation)
	insights.Delete("*", handler.RejectDerivedMutation)

	recommendations := api.Group("/recommendations")
	recommendations.Get("/today", handler.GetTodayRecommendation)
	recommendations.Post("*", handler.RejectDerivedMutation)
	recommendations.Put("*", handler.RejectDerivedMutation)
	recommendations.Delete("*", handler.RejectDerivedMutation)

	api.Get("/burnout", handler.GetBurnout)

	export := api.Group("/export")
	export.Get("/summary", handler.ExportSummary)
	export.Get("/csv", handler.ExportCSV)
	export.Get("/json", handler.ExportJSON)

	api.Get("/dashboard", handler.GetDashboard)
}
