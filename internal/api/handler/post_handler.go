package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/aceontech/content-api/internal/api/respond"
	"github.com/aceontech/content-api/internal/core/domain"
	"github.com/aceontech/content-api/internal/core/ports"
)

// PostHandler handles post CRUD for the authenticated caller.
type PostHandler struct {
	service ports.PostService
	logger  zerolog.Logger
}

func NewPostHandler(service ports.PostService, logger zerolog.Logger) *PostHandler {
	return &PostHandler{service: service, logger: logger}
}

// Create handles POST /api/posts.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post details"
// @Success      200   {object}  createPostResponse
// @Failure      400   {object}  createPostResponse
// @Failure      422   {object}  createPostResponse
// @Router       /api/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return h.failCreate(c, domain.NewAppError("invalid request body", http.StatusBadRequest))
	}
	if err := c.Validate(&req); err != nil {
		return h.failCreate(c, err)
	}

	post, err := h.service.Create(c.Request().Context(), userID, ports.CreatePostInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return h.failCreate(c, err)
	}

	return c.JSON(http.StatusOK, createPostResponse{
		Envelope: respond.Success(),
		Post:     newPostSummary(post),
	})
}

// List handles GET /api/posts.
//
// @Summary      List the caller's posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listPostsResponse
// @Router       /api/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	posts, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		code, msg := h.classify(c, err)
		return c.JSON(code, listPostsResponse{Envelope: respond.Failure(msg)})
	}

	views := make([]postDetail, 0, len(posts))
	for i := range posts {
		views = append(views, *newPostDetail(&posts[i]))
	}

	return c.JSON(http.StatusOK, listPostsResponse{
		Envelope: respond.Success(),
		Posts:    views,
	})
}

// Update handles PUT /api/posts.
//
// @Summary      Update a post owned by the caller
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updatePostRequest  true  "Fields to update"
// @Success      200   {object}  postResponse
// @Failure      400   {object}  postResponse
// @Failure      404   {object}  postResponse
// @Router       /api/posts [put]
func (h *PostHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return h.failMutate(c, domain.NewAppError("invalid request body", http.StatusBadRequest))
	}
	if err := c.Validate(&req); err != nil {
		return h.failMutate(c, err)
	}
	if req.Title == nil && req.Description == nil {
		return h.failMutate(c, domain.NewAppError(
			"please define title or description to update post", http.StatusBadRequest))
	}

	post, err := h.service.Update(c.Request().Context(), userID, req.PostID, ports.UpdatePostInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return h.failMutate(c, err)
	}

	return c.JSON(http.StatusOK, postResponse{
		Envelope: respond.Success(),
		Post:     newPostDetail(post),
	})
}

// Delete handles DELETE /api/posts.
//
// @Summary      Delete a post owned by the caller
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      deletePostRequest  true  "Post to delete"
// @Success      200   {object}  postResponse
// @Failure      400   {object}  postResponse
// @Failure      404   {object}  postResponse
// @Router       /api/posts [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req deletePostRequest
	if err := c.Bind(&req); err != nil {
		return h.failMutate(c, domain.NewAppError("invalid request body", http.StatusBadRequest))
	}
	if err := c.Validate(&req); err != nil {
		return h.failMutate(c, err)
	}

	post, err := h.service.Delete(c.Request().Context(), userID, req.PostID)
	if err != nil {
		return h.failMutate(c, err)
	}

	return c.JSON(http.StatusOK, postResponse{
		Envelope: respond.Success(),
		Post:     newPostDetail(post),
	})
}

func (h *PostHandler) failCreate(c echo.Context, err error) error {
	code, msg := h.classify(c, err)
	return c.JSON(code, createPostResponse{Envelope: respond.Failure(msg)})
}

func (h *PostHandler) failMutate(c echo.Context, err error) error {
	code, msg := h.classify(c, err)
	return c.JSON(code, postResponse{Envelope: respond.Failure(msg)})
}

func (h *PostHandler) classify(c echo.Context, err error) (int, string) {
	code, msg := respond.Classify(err)
	if code == http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
	}
	return code, msg
}
