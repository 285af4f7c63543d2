package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dcode-github/listing_storefront/middleware"
	"github.com/dcode-github/listing_storefront/models"
	"github.com/dcode-github/listing_storefront/repository"
	"github.com/dcode-github/listing_storefront/utils"
	"github.com/dcode-github/listing_storefront/views"
)

// TokenResponse is the data of a successful JSON login.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// isFormPost reports whether r came from an HTML form rather than the JSON API.
func isFormPost(r *http.Request) bool {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data"
}

func decodeCredentials(r *http.Request) (models.Credentials, error) {
	var creds models.Credentials
	if isFormPost(r) {
		if err := r.ParseForm(); err != nil {
			return creds, err
		}
		creds = models.Credentials{
			UserID:   r.PostForm.Get("userID"),
			Email:    r.PostForm.Get("email"),
			Password: r.PostForm.Get("password"),
		}
	} else if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		return creds, err
	}
	creds.UserID = strings.TrimSpace(creds.UserID)
	creds.Email = strings.TrimSpace(creds.Email)
	return creds, nil
}

// fail answers a JSON client with status, and a form client with a redirect
// back to the form carrying the message.
func fail(w http.ResponseWriter, r *http.Request, formPath string, status int, message string) {
	if isFormPost(r) {
		http.Redirect(w, r, formPath+"?"+url.Values{"error": {message}}.Encode(), http.StatusSeeOther)
		return
	}
	utils.WriteError(w, status, message)
}

func RegisterUser(users repository.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		creds, err := decodeCredentials(r)
		if err != nil {
			slog.InfoContext(r.Context(), "error decoding user data", "error", err)
			fail(w, r, "/signup", http.StatusBadRequest, "Invalid request payload")
			return
		}
		if creds.UserID == "" || creds.Email == "" || creds.Password == "" {
			fail(w, r, "/signup", http.StatusBadRequest, "userID, email and password are required")
			return
		}

		hashedPwd, err := utils.HashPassword(creds.Password)
		if err != nil {
			slog.ErrorContext(r.Context(), "error hashing password", "error", err)
			fail(w, r, "/signup", http.StatusInternalServerError, "Failed to hash password")
			return
		}

		user := models.User{
			UserID:    creds.UserID,
			Email:     creds.Email,
			Password:  hashedPwd,
			CreatedAt: now().UTC(),
		}
		err = users.Create(r.Context(), user)
		if errors.Is(err, repository.ErrUserExists) {
			slog.InfoContext(r.Context(), "user already exists", "userID", creds.UserID)
			fail(w, r, "/signup", http.StatusConflict, "UserID or email already exists")
			return
		}
		if err != nil {
			slog.ErrorContext(r.Context(), "error creating user", "error", err)
			fail(w, r, "/signup", http.StatusInternalServerError, "Failed to create user")
			return
		}

		slog.InfoContext(r.Context(), "user registered", "userID", user.UserID)
		if isFormPost(r) {
			http.Redirect(w, r, "/signin", http.StatusSeeOther)
			return
		}
		utils.WriteJSON(w, http.StatusCreated, models.APIResponse{
			Success: true,
			Message: "User registered successfully",
			Data:    user.Public(),
		})
	}
}

// LoginUser checks credentials, issues a token and stores it in the session
// cookie.
func LoginUser(users repository.UserRepository, tokens *utils.JWTManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		creds, err := decodeCredentials(r)
		if err != nil {
			slog.InfoContext(r.Context(), "error decoding login credentials", "error", err)
			fail(w, r, "/signin", http.StatusBadRequest, "Invalid payload")
			return
		}

		user, err := users.FindByUserID(r.Context(), creds.UserID)
		if errors.Is(err, repository.ErrUserNotFound) {
			slog.InfoContext(r.Context(), "user not found", "userID", creds.UserID)
			fail(w, r, "/signin", http.StatusUnauthorized, "Invalid credentials")
			return
		}
		if err != nil {
			slog.ErrorContext(r.Context(), "error finding user", "error", err)
			fail(w, r, "/signin", http.StatusInternalServerError, "Failed to sign in")
			return
		}
		if !utils.CheckPasswordHash(creds.Password, user.Password) {
			slog.InfoContext(r.Context(), "invalid credentials", "userID", creds.UserID)
			fail(w, r, "/signin", http.StatusUnauthorized, "Invalid credentials")
			return
		}

		token, expiresAt, err := tokens.GenerateJWT(user.UserID)
		if err != nil {
			slog.ErrorContext(r.Context(), "error generating JWT token", "error", err)
			fail(w, r, "/signin", http.StatusInternalServerError, "Failed to generate token")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookie,
			Value:    token,
			Path:     "/",
			Expires:  expiresAt,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		if isFormPost(r) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		utils.WriteJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Message: "Login successful",
			Data:    TokenResponse{Token: token, ExpiresAt: expiresAt},
		})
	}
}

func LogoutUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		if isFormPost(r) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		utils.WriteJSON(w, http.StatusOK, models.APIResponse{Success: true, Message: "Logged out"})
	}
}

// Me returns the signed-in account. It expects RequireAuth in front of it.
func Me(users repository.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			utils.WriteError(w, http.StatusUnauthorized, "User ID missing in context")
			return
		}
		user, err := users.FindByUserID(r.Context(), userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			utils.WriteError(w, http.StatusUnauthorized, "User no longer exists")
			return
		}
		if err != nil {
			slog.ErrorContext(r.Context(), "error finding user", "error", err)
			utils.WriteError(w, http.StatusInternalServerError, "Failed to load user")
			return
		}
		utils.WriteJSON(w, http.StatusOK, models.APIResponse{Success: true, Message: "Signed in", Data: user.Public()})
	}
}

func SignInPage(renderer *views.Renderer, appName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := newPage(r, appName, "Sign In", models.NoSelection())
		page.Content = views.AuthContent{
			Heading:      "Sign In",
			Action:       "/login",
			Error:        r.URL.Query().Get("error"),
			SubmitButton: models.ButtonProps{Label: "Sign In", Type: "submit", Variant: models.VariantPrimary},
			AltHref:      "/signup",
			AltLabel:     "New here? Sign Up",
		}
		renderPage(w, r, renderer, http.StatusOK, views.AuthPage, page)
	}
}

func SignUpPage(renderer *views.Renderer, appName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := newPage(r, appName, "Sign Up", models.NoSelection())
		page.Content = views.AuthContent{
			Heading:      "Sign Up",
			Action:       "/register",
			ShowEmail:    true,
			Error:        r.URL.Query().Get("error"),
			SubmitButton: models.ButtonProps{Label: "Sign Up", Type: "submit", Variant: models.VariantPrimary},
			AltHref:      "/signin",
			AltLabel:     "Already have an account? Sign In",
		}
		renderPage(w, r, renderer, http.StatusOK, views.AuthPage, page)
	}
}
