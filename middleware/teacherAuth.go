package middleware

import (
	"context"
	"net/http"

	teacherRepo "teacherdekho/database/repository/teacher"
	"teacherdekho/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthTeacherMiddleware authenticates requests made by teachers. With
// optional set, an absent or invalid token lets the request through without
// a teacherID in the context instead of aborting (public profile reads show
// fewer fields).
func JWTAuthTeacherMiddleware(repo teacherRepo.TeacherRepository, optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		ctx := context.Background()

		tokenString, ok := bearerToken(c)
		if !ok {
			if optional {
				c.Next()
				return
			}
			abortUnauthorized(c)
			return
		}

		teacherID, role, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || teacherID == "" || role != "teacher" {
			if optional {
				c.Next()
				return
			}
			abortUnauthorized(c)
			return
		}

		computedHash := utils.HashToken(tokenString)
		valid := verifyPinnedToken(ctx, teacherID, computedHash, func(id string) (string, error) {
			t, err := repo.GetByID(id)
			if err != nil {
				return "", err
			}
			return t.TokenHash, nil
		})
		if !valid {
			if optional {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Token mismatch",
				"code":  0,
			})
			return
		}

		c.Set("teacherID", teacherID)
		c.Next()
	}
}
