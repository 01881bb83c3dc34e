package middleware

import (
	"context"
	"net/http"

	studentRepo "teacherdekho/database/repository/student"
	"teacherdekho/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthStudentMiddleware authenticates requests made by students.
func JWTAuthStudentMiddleware(repo studentRepo.StudentRepository) gin.HandlerFunc {
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
			abortUnauthorized(c)
			return
		}

		studentID, role, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || studentID == "" || role != "student" {
			abortUnauthorized(c)
			return
		}

		computedHash := utils.HashToken(tokenString)
		valid := verifyPinnedToken(ctx, studentID, computedHash, func(id string) (string, error) {
			st, err := repo.GetByID(id)
			if err != nil {
				return "", err
			}
			return st.TokenHash, nil
		})
		if !valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Token mismatch",
				"code":  0,
			})
			return
		}

		c.Set("studentID", studentID)
		c.Next()
	}
}
