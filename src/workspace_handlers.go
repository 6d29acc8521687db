package main

import (
	"net/http"

	"ftm/src/lib"
	"ftm/src/store"
	"ftm/src/types"
	"ftm/src/utils"

	"github.com/gin-gonic/gin"
)

// workspaceHandlers wires the tenant surface. Creation and key lookup sit
// outside the workspace middleware; everything else already knows its tenant.
func workspaceHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/workspaces", func(ctx *gin.Context) {
			var body types.CreateWorkspaceRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			existing, err := store.Current().Workspaces().FindByKey(ctx.Request.Context(), body.Key)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if existing != nil {
				ctx.JSON(http.StatusConflict, gin.H{"error": "workspace key already in use"})
				return
			}
			ws := utils.NewWorkspace(&body, clk.Now())
			if err := store.Current().Workspaces().Create(ctx.Request.Context(), ws); err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": ws})
		}).
		GET("/workspaces/lookup", func(ctx *gin.Context) {
			key := ctx.Query("key")
			if key == "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing key"})
				return
			}
			ws, err := utils.LookupWorkspace(ctx.Request.Context(), lib.GetRedisClient(), key)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if ws == nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": ws})
		})
	return g
}

func workspaceAdminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/workspace", func(ctx *gin.Context) {
			workspaceId := ctx.GetString("workspace_id")
			ws, err := store.Current().Workspaces().Get(ctx.Request.Context(), workspaceId)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if ws == nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": ws})
		}).
		PATCH("/workspace", func(ctx *gin.Context) {
			var body types.UpdateWorkspaceRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			workspaceId := ctx.GetString("workspace_id")
			ws, err := utils.UpdateWorkspaceMeta(ctx.Request.Context(), lib.GetRedisClient(), workspaceId, &body)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if ws == nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": ws})
		})
	return g
}
