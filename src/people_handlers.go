package main

import (
	"log"
	"net/http"
	"strings"

	"ftm/src/models"
	"ftm/src/store"
	"ftm/src/types"
	"ftm/src/utils"

	"github.com/gin-gonic/gin"
)

func peopleHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/people", func(ctx *gin.Context) {
			workspaceId := ctx.GetString("workspace_id")
			people, err := store.Current().People().List(ctx.Request.Context(), workspaceId)
			if err != nil {
				log.Printf("Error listing people: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": people})
		}).
		GET("/people/search", func(ctx *gin.Context) {
			query := strings.TrimSpace(ctx.Query("q"))
			if len(query) < 2 {
				ctx.JSON(http.StatusOK, gin.H{"data": []models.Person{}})
				return
			}
			workspaceId := ctx.GetString("workspace_id")
			people, err := utils.SearchPeople(ctx.Request.Context(), workspaceId, query)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if people == nil {
				people = []models.Person{}
			}
			ctx.JSON(http.StatusOK, gin.H{"data": people})
		}).
		POST("/people", func(ctx *gin.Context) {
			var body types.PersonRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			workspaceId := ctx.GetString("workspace_id")
			person, err := utils.AddOrUpdatePerson(ctx.Request.Context(), workspaceId, &body)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": person})
		}).
		DELETE("/people/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			ok, err := utils.DeletePerson(ctx.Request.Context(), ctx.GetString("workspace_id"), params.ID)
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
		POST("/people/:id/merge", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			var body struct {
				MergeID string `json:"mergeId" binding:"required"`
			}
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ok, err := utils.MergePeople(ctx.Request.Context(), ctx.GetString("workspace_id"), params.ID, body.MergeID)
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
