package web

import (
	"errors"
	"strconv"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/simplici7y/s7/internal/user/internal/domain"
	"github.com/simplici7y/s7/internal/user/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.UserService
}

func NewHandler(svc service.UserService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/signup", ginx.B[SignupReq](h.Signup))
	users.POST("/list", ginx.B[ListReq](h.List))
	users.POST("/detail", ginx.B[DetailReq](h.Detail))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
}

func (h *Handler) Signup(ctx *ginx.Context, req SignupReq) (ginx.Result, error) {
	id, err := h.svc.Signup(ctx, domain.User{
		Username:    req.Username,
		DisplayName: req.DisplayName,
	})
	if errors.Is(err, service.ErrUserDuplicate) {
		return duplicateUsernameResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	_, err = session.NewSessionBuilder(ctx, id).
		SetJwtData(map[string]string{
			"admin": strconv.FormatBool(false),
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.svc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newProfile(u)}, nil
}

func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateNonSensitiveInfo(ctx, domain.User{
		Id:          sess.Claims().Uid,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	u, err := h.svc.ProfileByUsername(ctx, req.Username)
	if errors.Is(err, service.ErrUserNotFound) {
		return userNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newProfile(u)}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	us, total, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: UsersList{
			Total: total,
			Users: slice.Map(us, func(idx int, src domain.User) Profile {
				return newProfile(src)
			}),
		},
	}, nil
}
