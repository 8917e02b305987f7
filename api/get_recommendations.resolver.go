package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

func (h ApiHandler) getRecommendations(c *gin.Context) {
	userID, err := h.resolveUserID(c, queryStrPtr(c, "userID"))
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	session, err := h.RecommendationService.GetCurrentSession(userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if session == nil {
		returnErrorJsonCode(fmt.Errorf("no active recommendation session"), c, 404)
		return
	}

	c.JSON(200, sessionResponse(session))
}
