package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"ftm/src/analytics"
	"ftm/src/lib"
	"ftm/src/models"
	"ftm/src/store"
	"ftm/src/utils"

	"github.com/gin-gonic/gin"
)

func workspaceEvents(ctx *gin.Context) ([]models.Event, bool) {
	workspaceId := ctx.GetString("workspace_id")
	events, err := store.Current().Events().List(ctx.Request.Context(), workspaceId)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return events, true
}

func analyticsHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/analytics/revenue", func(ctx *gin.Context) {
			events, ok := workspaceEvents(ctx)
			if !ok {
				return
			}
			var teamIds []string
			if raw := ctx.Query("team_ids"); raw != "" {
				teamIds = strings.Split(raw, ",")
			}
			teamNames := map[string]string{}
			workspaceId := ctx.GetString("workspace_id")
			if ws, err := store.Current().Workspaces().Get(ctx.Request.Context(), workspaceId); err == nil && ws != nil {
				for _, team := range ws.Teams {
					teamNames[team.Slug] = team.Name
				}
			}
			report := analytics.GenerateRevenueReport(events, ctx.Query("start_date"), ctx.Query("end_date"), teamIds, teamNames)
			ctx.JSON(http.StatusOK, gin.H{"data": report})
		}).
		GET("/analytics/breakdown", func(ctx *gin.Context) {
			events, ok := workspaceEvents(ctx)
			if !ok {
				return
			}
			breakdown := analytics.GenerateAssignmentBreakdown(events, ctx.Query("start_date"), ctx.Query("end_date"))
			ctx.JSON(http.StatusOK, gin.H{"data": breakdown})
		}).
		GET("/analytics/top-holders", func(ctx *gin.Context) {
			events, ok := workspaceEvents(ctx)
			if !ok {
				return
			}
			workspaceId := ctx.GetString("workspace_id")
			people, err := store.Current().People().List(ctx.Request.Context(), workspaceId)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
			ctx.JSON(http.StatusOK, gin.H{"data": analytics.TopTicketHolders(people, events, limit)})
		}).
		GET("/analytics/companies", func(ctx *gin.Context) {
			events, ok := workspaceEvents(ctx)
			if !ok {
				return
			}
			workspaceId := ctx.GetString("workspace_id")
			people, err := store.Current().People().List(ctx.Request.Context(), workspaceId)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": analytics.CompanyBreakdown(people, events)})
		}).
		GET("/analytics/events", func(ctx *gin.Context) {
			events, ok := workspaceEvents(ctx)
			if !ok {
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": analytics.GetEventStatistics(events, clk.Now())})
		}).
		GET("/analytics/requests", func(ctx *gin.Context) {
			events, ok := workspaceEvents(ctx)
			if !ok {
				return
			}
			workspaceId := ctx.GetString("workspace_id")
			requests, err := store.Current().Requests().List(ctx.Request.Context(), workspaceId)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": analytics.GetRequestStatistics(requests, events)})
		}).
		GET("/analytics/dashboard", func(ctx *gin.Context) {
			workspaceId := ctx.GetString("workspace_id")
			if raw, ok := utils.CachedDashboardStats(ctx.Request.Context(), lib.GetRedisClient(), workspaceId); ok {
				ctx.Data(http.StatusOK, "application/json", raw)
				return
			}
			events, ok := workspaceEvents(ctx)
			if !ok {
				return
			}
			requests, err := store.Current().Requests().List(ctx.Request.Context(), workspaceId)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			now := clk.Now()
			ctx.JSON(http.StatusOK, gin.H{
				"workspaceId": workspaceId,
				"generatedAt": now,
				"events":      analytics.GetEventStatistics(events, now),
				"requests":    analytics.GetRequestStatistics(requests, events),
			})
		}).
		GET("/export/:entity", func(ctx *gin.Context) {
			workspaceId := ctx.GetString("workspace_id")
			entity := ctx.Param("entity")

			var headers []string
			var rows [][]string
			switch entity {
			case "events":
				events, ok := workspaceEvents(ctx)
				if !ok {
					return
				}
				headers, rows = utils.EventCSVRows(events)
			case "people":
				people, err := store.Current().People().List(ctx.Request.Context(), workspaceId)
				if err != nil {
					ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
					return
				}
				headers, rows = utils.PersonCSVRows(people)
			case "requests":
				requests, err := store.Current().Requests().List(ctx.Request.Context(), workspaceId)
				if err != nil {
					ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
					return
				}
				headers, rows = utils.RequestCSVRows(requests)
			default:
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown export entity"})
				return
			}

			out, err := utils.RecordsToCSV(headers, rows)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", entity))
			ctx.Data(http.StatusOK, "text/csv", []byte(out))
		})
	return g
}
