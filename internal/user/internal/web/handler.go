package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/nird-project/nird/internal/user/internal/domain"
	"github.com/nird-project/nird/internal/user/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	userSvc service.UserService
}

func NewHandler(userSvc service.UserService) *Handler {
	return &Handler{
		userSvc: userSvc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/signup", ginx.B[SignupReq](h.Signup))
	users.POST("/login", ginx.B[LoginReq](h.Login))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
}

func (h *Handler) Signup(ctx *ginx.Context, req SignupReq) (ginx.Result, error) {
	role := domain.Role(req.Role)
	estType := domain.EstablishmentType(req.Establishment.Type)
	if req.Email == "" || req.Password == "" || !role.Valid() || !estType.Valid() {
		return invalidInputResult, nil
	}
	u, err := h.userSvc.Signup(ctx, domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
		Establishment: domain.Establishment{
			Name:   req.Establishment.Name,
			Type:   estType,
			City:   req.Establishment.City,
			Region: req.Establishment.Region,
		},
	})
	if errors.Is(err, service.ErrDuplicateEmail) {
		return duplicateEmailResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	err = h.buildSession(ctx, u)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toProfile(u),
	}, nil
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	u, err := h.userSvc.Login(ctx, req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidEmailOrPassword) {
		return invalidEmailOrPasswordResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	err = h.buildSession(ctx, u)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toProfile(u),
	}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toProfile(u),
	}, nil
}

func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	estType := domain.EstablishmentType(req.Establishment.Type)
	if req.Establishment.Type != "" && !estType.Valid() {
		return invalidInputResult, nil
	}
	err := h.userSvc.UpdateNonSensitiveInfo(ctx, domain.User{
		Id:   sess.Claims().Uid,
		Name: req.Name,
		Establishment: domain.Establishment{
			Name:   req.Establishment.Name,
			Type:   estType,
			City:   req.Establishment.City,
			Region: req.Establishment.Region,
		},
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

// buildSession 把角色塞进 jwt data，
// 后面目录管理这类需要权限的接口直接从 claims 里取
func (h *Handler) buildSession(ctx *ginx.Context, u domain.User) error {
	_, err := session.NewSessionBuilder(ctx, u.Id).
		SetJwtData(map[string]string{
			"role": u.Role.String(),
		}).Build()
	return err
}

func (h *Handler) toProfile(u domain.User) Profile {
	return Profile{
		Id:    u.Id,
		SN:    u.SN,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role.String(),
		Establishment: EstablishmentVO{
			Name:   u.Establishment.Name,
			Type:   u.Establishment.Type.String(),
			City:   u.Establishment.City,
			Region: u.Establishment.Region,
		},
	}
}
