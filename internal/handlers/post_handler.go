package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/raihankalla/myriad-backend/internal/models"
	"github.com/raihankalla/myriad-backend/internal/repositories"
	"github.com/raihankalla/myriad-backend/pkg/crypto"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository   repositories.PostRepository
	peopleRepository repositories.PeopleRepository
	usmRepository    repositories.UserSocialMediaRepository
	escrowSecretKey  string
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, peopleRepo repositories.PeopleRepository, usmRepo repositories.UserSocialMediaRepository, escrowSecretKey string) *PostHandler {
	return &PostHandler{
		postRepository:   postRepo,
		peopleRepository: peopleRepo,
		usmRepository:    usmRepo,
		escrowSecretKey:  escrowSecretKey,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts", h.GetPosts)
	g.GET("/posts/:id", h.GetPost)
	g.GET("/posts/:id/walletaddress", h.GetWalletAddress)
	g.PUT("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
}

// CreatePost creates a new platform-native post by the authenticated user
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post := &models.Post{
		CreatedBy: userID,
		Platform:  models.PlatformMyriad,
		Title:     req.Title,
		Text:      req.Text,
		Tags:      req.Tags,
	}

	if err := h.postRepository.CreatePost(c.Request().Context(), post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, post)
}

// GetPost retrieves a post by id
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postRepository.GetPostByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, post)
}

// GetPosts retrieves posts with pagination
func (h *PostHandler) GetPosts(c echo.Context) error {
	skip, limit := pagination(c)

	if userID := c.QueryParam("user_id"); userID != "" {
		posts, err := h.postRepository.GetPostsByUserID(c.Request().Context(), userID, skip, limit)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, posts)
	}

	posts, err := h.postRepository.GetAllPosts(c.Request().Context(), skip, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, posts)
}

// GetWalletAddress resolves the tip destination of a post. A platform-native
// post pays its creator. An imported post pays the user who claimed the
// original author's identity, or the author's escrow wallet when the identity
// is unclaimed but escrow-enabled.
func (h *PostHandler) GetWalletAddress(c echo.Context) error {
	ctx := c.Request().Context()
	post, err := h.postRepository.GetPostByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if post.Platform == models.PlatformMyriad {
		return c.JSON(http.StatusOK, echo.Map{"wallet_address": post.CreatedBy})
	}

	if post.PeopleID == "" {
		return echo.NewHTTPError(http.StatusNotFound, "Wallet address not found")
	}

	usm, err := h.usmRepository.GetUserSocialMediaByPeopleID(ctx, post.PeopleID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if usm != nil {
		return c.JSON(http.StatusOK, echo.Map{"wallet_address": usm.UserID})
	}

	people, err := h.peopleRepository.GetPeopleByID(ctx, post.PeopleID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Wallet address not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if people.WalletAddressPassword == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Wallet address unavailable")
	}

	address, err := h.escrowAddress(people)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"wallet_address": address})
}

// escrowAddress derives the escrow wallet for an unclaimed identity. The
// derivation path is a JWT over the people document, so only holders of the
// escrow secret can reproduce the keypair.
func (h *PostHandler) escrowAddress(people *models.People) (string, error) {
	claims := jwt.MapClaims{
		"id":             people.ID,
		"origin_user_id": people.OriginUserID,
		"platform":       string(people.Platform),
		"iat":            people.CreatedAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.escrowSecretKey))
	if err != nil {
		return "", err
	}

	pair, err := crypto.PolkadotKeyPairFromURI("//" + token)
	if err != nil {
		return "", err
	}
	return crypto.HexAddress(pair.Public()), nil
}

// UpdatePost updates a post owned by the authenticated user
func (h *PostHandler) UpdatePost(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	post, err := h.postRepository.GetPostByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if post.CreatedBy != userID {
		return echo.NewHTTPError(http.StatusForbidden, "Not the post owner")
	}

	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Text != "" {
		post.Text = req.Text
	}
	if req.Tags != nil {
		post.Tags = req.Tags
	}
	post.UpdatedAt = time.Now()

	if err := h.postRepository.UpdatePost(ctx, post.ID, post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, post)
}

// DeletePost deletes a post owned by the authenticated user
func (h *PostHandler) DeletePost(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	post, err := h.postRepository.GetPostByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if post.CreatedBy != userID {
		return echo.NewHTTPError(http.StatusForbidden, "Not the post owner")
	}

	if err := h.postRepository.DeletePost(ctx, post.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
