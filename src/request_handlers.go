package main

import (
	"errors"
	"net/http"

	"ftm/src/store"
	"ftm/src/types"
	"ftm/src/utils"

	"github.com/gin-gonic/gin"
)

func requestHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/requests", func(ctx *gin.Context) {
			workspaceId := ctx.GetString("workspace_id")
			eventId := ctx.Query("event_id")
			if eventId != "" {
				requests, err := utils.RequestsByEvent(ctx.Request.Context(), workspaceId, eventId)
				if err != nil {
					ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusOK, gin.H{"data": requests})
				return
			}
			requests, err := store.Current().Requests().List(ctx.Request.Context(), workspaceId)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": requests})
		}).
		POST("/requests", func(ctx *gin.Context) {
			var body types.CreateRequestRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			workspaceId := ctx.GetString("workspace_id")
			already, err := utils.HasUserRequestedEvent(ctx.Request.Context(), workspaceId, body.UserID, body.EventID)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if already {
				ctx.JSON(http.StatusConflict, gin.H{"error": "user already has a request for this event"})
				return
			}
			request, err := utils.CreateRequest(ctx.Request.Context(), workspaceId, &body)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": request})
		}).
		PATCH("/requests/:id/status", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			var body types.UpdateRequestStatusBody
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			request, err := utils.UpdateRequestStatus(ctx.Request.Context(), ctx.GetString("workspace_id"), params.ID, body.Status, body.ProcessedBy, body.AssignedTicketID)
			if err != nil {
				if errors.Is(err, utils.ErrRequestProcessed) {
					ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if request == nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": request})
		}).
		DELETE("/requests/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			ok, err := utils.DeleteRequest(ctx.Request.Context(), ctx.GetString("workspace_id"), params.ID)
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
