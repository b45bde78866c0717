package register

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tickethub/internal/lib/api/response"
	"tickethub/internal/lib/jwt"
	"tickethub/internal/lib/logger/sl"
	"tickethub/internal/models"
	"tickethub/internal/storage"
)

type RegisterRequest struct {
	Email     string   `json:"email" validate:"required,email"`
	Username  string   `json:"username" validate:"required"`
	FirstName string   `json:"first_name" validate:"required"`
	LastName  string   `json:"last_name" validate:"required"`
	Password  string   `json:"password" validate:"required,min=6"`
	Roles     []string `json:"roles,omitempty"`
}

type RegisterResponse struct {
	response.Response
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserSaver
type UserSaver interface {
	SaveUser(user models.User) error
}

func New(log *slog.Logger, saver UserSaver, secret string, tokenTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.register.New"

		log = log.With(slog.String("op", op))

		var req RegisterRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.String("email", req.Email))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		roles, err := resolveRoles(req.Roles)
		if err != nil {
			log.Error("invalid roles", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		passHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("failed to hash password", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register user"))
			return
		}

		now := time.Now()
		user := models.User{
			ID:        uuid.New().String(),
			Email:     req.Email,
			Username:  req.Username,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			PassHash:  passHash,
			Roles:     roles,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err = saver.SaveUser(user); err != nil {
			log.Error("failed to save user", sl.Err(err))

			if errors.Is(err, storage.ErrUserExists) {
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("email or username already taken"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register user"))
			return
		}

		token, err := jwt.NewToken(user, secret, tokenTTL)
		if err != nil {
			log.Error("failed to issue token", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register user"))
			return
		}

		log.Info("user registered", slog.String("user_id", user.ID))

		render.JSON(w, r, RegisterResponse{
			Response: response.OK(),
			Token:    token,
			User:     user,
		})
	}
}

// Self-service registration may pick USER and ORGANIZER; ADMIN is only
// granted out of band.
func resolveRoles(requested []string) ([]string, error) {
	if len(requested) == 0 {
		return []string{models.RoleUser}, nil
	}

	for _, role := range requested {
		if role != models.RoleUser && role != models.RoleOrganizer {
			return nil, errors.New("role " + role + " cannot be requested")
		}
	}

	return requested, nil
}
