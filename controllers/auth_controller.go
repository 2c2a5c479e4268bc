package controllers

import (
	"net/http"

	"hotel-management/auth"
	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"go.uber.org/zap"
)

type AuthController struct {
	Users  *services.UserService
	Tokens *auth.Service
	log    *zap.Logger
}

func NewAuthController(users *services.UserService, tokens *auth.Service, log *zap.Logger) *AuthController {
	return &AuthController{Users: users, Tokens: tokens, log: log}
}

type loginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type registerRequest struct {
	ID       string `json:"id" form:"id"`
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"`
}

// Login POST /login
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := ac.Users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case services.IsNotFound(err):
			ac.log.Info("login for unknown account", zap.String("username", req.Username))
		case services.KindOf(err) == services.KindUnauthorized:
			ac.log.Info("login rejected", zap.String("username", req.Username))
		}
		utils.RespondError(c, err)
		return
	}

	token, err := ac.Tokens.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		ac.log.Error("token generation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "login successful", gin.H{
		"token":  token,
		"role":   user.Role,
		"userId": user.ID,
	})
}

// Register POST /register
func (ac *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	var in services.RegisterInput
	if err := copier.Copy(&in, &req); err != nil {
		utils.RespondError(c, err)
		return
	}

	user, err := ac.Users.Register(c.Request.Context(), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	ac.log.Info("user registered", zap.String("user_id", user.ID), zap.String("role", user.Role))
	utils.JSONSuccess(c, http.StatusCreated, "user registered", gin.H{"userId": user.ID})
}
