package main

import (
	"log"
	"net/http"

	"ftm/src/models"
	"ftm/src/store"
	"ftm/src/types"
	"ftm/src/utils"

	"github.com/gin-gonic/gin"
)

func eventHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/events", func(ctx *gin.Context) {
			var filters types.EventFilters
			if err := ctx.ShouldBindQuery(&filters); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			workspaceId := ctx.GetString("workspace_id")
			events, err := store.Current().Events().List(ctx.Request.Context(), workspaceId)
			if err != nil {
				log.Printf("Error listing events: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			filtered := make([]models.Event, 0, len(events))
			for event := range utils.FilterEvents(events, filters, clk.Now()) {
				stats := utils.GetEventStats(&event)
				event.Stats = &stats
				filtered = append(filtered, event)
			}
			ctx.JSON(http.StatusOK, gin.H{"data": filtered})
		}).
		POST("/events", func(ctx *gin.Context) {
			var body types.CreateEventRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			workspaceId := ctx.GetString("workspace_id")
			ws, err := store.Current().Workspaces().Get(ctx.Request.Context(), workspaceId)
			if err != nil {
				log.Printf("Error loading workspace: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			event, err := utils.CreateNewEvent(ctx.Request.Context(), &body, ws, clk.Now())
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if event == nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing required event fields"})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": event})
		}).
		GET("/events/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			event, err := store.Current().Events().Get(ctx.Request.Context(), ctx.GetString("workspace_id"), params.ID)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if event == nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			stats := utils.GetEventStats(event)
			event.Stats = &stats
			ctx.JSON(http.StatusOK, gin.H{"data": event})
		}).
		PATCH("/events/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			var body types.UpdateEventRequestBody
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			event, err := utils.UpdateEventFields(ctx.Request.Context(), ctx.GetString("workspace_id"), params.ID, &body)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if event == nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": event})
		}).
		DELETE("/events/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			ok, err := utils.DeleteEvent(ctx.Request.Context(), ctx.GetString("workspace_id"), params.ID)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if !ok {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		GET("/events/:id/stats", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			event, err := store.Current().Events().Get(ctx.Request.Context(), ctx.GetString("workspace_id"), params.ID)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if event == nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": utils.GetEventStats(event)})
		})
	return g
}

func ticketHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		PATCH("/events/:id/tickets/:tid/assignment", func(ctx *gin.Context) {
			var params types.TicketURIParams
			var patch types.AssignmentPatch
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			if err := ctx.ShouldBindJSON(&patch); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ticket, confirmedNow, err := utils.UpdateTicketAssignment(ctx.Request.Context(), ctx.GetString("workspace_id"), params.ID, params.TicketID, &patch)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if ticket == nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			// History is recorded once, on the patch that confirms the
			// assignment. Later edits of a confirmed ticket append nothing.
			if confirmedNow && ticket.Assigned() {
				recordAssignmentHistory(ctx, params.ID, ticket)
			}
			ctx.JSON(http.StatusOK, gin.H{"data": ticket})
		}).
		POST("/events/:id/tickets", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			var body types.AddCustomTicketRequestBody
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ticket, err := utils.AddCustomTicket(ctx.Request.Context(), ctx.GetString("workspace_id"), params.ID, body.Section, body.Row, body.Seat, body.Value)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if ticket == nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": ticket})
		}).
		DELETE("/events/:id/tickets/:tid", func(ctx *gin.Context) {
			var params types.TicketURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			ok, err := utils.DeleteTicket(ctx.Request.Context(), ctx.GetString("workspace_id"), params.ID, params.TicketID)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if !ok {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}

// recordAssignmentHistory upserts the assignee in the person directory and
// appends a snapshot of the confirmed assignment. History failures are
// logged, not surfaced: the ticket update already succeeded.
func recordAssignmentHistory(ctx *gin.Context, eventId string, ticket *models.Ticket) {
	workspaceId := ctx.GetString("workspace_id")
	event, err := store.Current().Events().Get(ctx.Request.Context(), workspaceId, eventId)
	if err != nil || event == nil {
		log.Printf("Error loading event for history: %v\n", err)
		return
	}
	person, err := utils.AddOrUpdatePerson(ctx.Request.Context(), workspaceId, &types.PersonRequestBody{
		Name:    ticket.AssignedTo,
		Company: ticket.AssignedCompany,
	})
	if err != nil || person == nil {
		log.Printf("Error upserting person for history: %v\n", err)
		return
	}
	entry := models.AssignmentHistory{
		EventID:        event.ID,
		EventName:      event.Opponent,
		Date:           event.Date,
		SeatType:       ticket.SeatType,
		AssignmentType: ticket.AssignmentType,
		Price:          ticket.Price,
		Confirmed:      ticket.Confirmed,
	}
	if err := utils.AddAssignmentHistory(ctx.Request.Context(), workspaceId, person.Name, person.Company, entry); err != nil {
		log.Printf("Error recording assignment history: %s\n", err.Error())
	}
}
