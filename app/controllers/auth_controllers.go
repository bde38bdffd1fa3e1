package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/rentalease/app/models"
	"github.com/shashiranjanraj/rentalease/app/resources"
	"github.com/shashiranjanraj/rentalease/app/services"
	"github.com/shashiranjanraj/rentalease/pkg/auth"
	"github.com/shashiranjanraj/rentalease/pkg/ctx"
	"github.com/shashiranjanraj/rentalease/pkg/resource"
)

const tokenCookie = "token"

// AuthController serves signin/login/logout for one account kind.
type AuthController struct {
	service      *services.AuthService
	secureCookie bool
}

func NewAuthController(service *services.AuthService, secureCookie bool) *AuthController {
	return &AuthController{service: service, secureCookie: secureCookie}
}

// Signin registers an account and returns a token for it.
func (a *AuthController) Signin(c *ctx.Context) {
	var input services.RegisterInput
	if !c.DecodeJSON(&input) {
		return
	}

	result, err := a.service.Register(c.Context(), input)
	if err != nil {
		c.Fail(err)
		return
	}

	c.Created(resource.Map{
		"message": a.label() + " registered successfully",
		"token":   result.Token,
		"user":    resource.New[models.Account](resources.Account{}, result.Account),
	})
}

// Login checks credentials, sets the token cookie and returns the token.
func (a *AuthController) Login(c *ctx.Context) {
	var input services.LoginInput
	if !c.DecodeJSON(&input) {
		return
	}

	result, err := a.service.Login(c.Context(), input)
	if err != nil {
		c.Fail(err)
		return
	}

	c.SetCookie(&http.Cookie{
		Name:     tokenCookie,
		Value:    result.Token,
		Path:     "/",
		Expires:  result.ExpiresAt,
		HttpOnly: true,
		Secure:   a.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	c.Success(resource.Map{
		"token": result.Token,
		"user":  resource.New[models.Account](resources.Account{}, result.Account),
	})
}

// Logout keeps no server state; it clears the cookie for browser clients.
func (a *AuthController) Logout(c *ctx.Context) {
	c.SetCookie(&http.Cookie{
		Name:     tokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	c.String(http.StatusOK, "Logged out successfully")
}

func (a *AuthController) label() string {
	if a.service.Kind() == auth.KindHost {
		return "Admin"
	}
	return "User"
}
