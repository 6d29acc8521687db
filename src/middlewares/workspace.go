package middlewares

import (
	"log"

	"ftm/src/lib"
	"ftm/src/utils"

	"github.com/gin-gonic/gin"
)

// WorkspaceMiddleware resolves the X-Workspace-Key header into a workspace
// and stashes its id on the request context. Requests without a valid key
// are rejected.
func WorkspaceMiddleware(ctx *gin.Context) {
	key := ctx.Request.Header.Get("X-Workspace-Key")
	if key == "" {
		ctx.AbortWithStatusJSON(401, gin.H{"error": "missing workspace key"})
		return
	}
	ws, err := utils.LookupWorkspace(ctx.Request.Context(), lib.GetRedisClient(), key)
	if err != nil {
		log.Printf("workspace lookup error: %s\n", err.Error())
		ctx.AbortWithStatusJSON(500, gin.H{"error": "could not resolve workspace"})
		return
	}
	if ws == nil {
		ctx.AbortWithStatusJSON(401, gin.H{"error": "unknown workspace key"})
		return
	}
	ctx.Set("workspace_id", ws.ID)
	ctx.Set("workspace_key", key)
	ctx.Next()
}
