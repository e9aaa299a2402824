package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/iqol/brand-pulse-api/internal/api/handler/router"
	"github.com/iqol/brand-pulse-api/internal/usecases/authenticating"
	"github.com/iqol/brand-pulse-api/internal/usecases/brandpicking"
	"github.com/iqol/brand-pulse-api/internal/usecases/reporting"
	"github.com/iqol/brand-pulse-api/internal/usecases/tasking"
	"github.com/iqol/brand-pulse-api/internal/usecases/tracking"
	"github.com/iqol/brand-pulse-api/pkg/middleware"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = validator.New()
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

// UserBrands retorna as rotas para gerenciamento de marcas vinculadas a usuários
func UserBrands(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users/:id/brands",
			Method:      http.MethodPut,
			Handler:     UpdateUserBrands(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/brands/link",
			Method:      http.MethodPost,
			Handler:     LinkUserBrand(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/brands/:brand_id",
			Method:      http.MethodDelete,
			Handler:     UnlinkUserBrand(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Brands(service brandpicking.BrandPicker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/brands",
			Method:      http.MethodGet,
			Handler:     ListBrands(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Metrics(service tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/metrics",
			Method:      http.MethodGet,
			Handler:     ListRecentMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/metrics",
			Method:      http.MethodPost,
			Handler:     CreateMetric(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/metrics/:id",
			Method:      http.MethodPut,
			Handler:     UpdateMetric(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/metrics/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteMetric(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Blogs(service tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/blogs",
			Method:      http.MethodGet,
			Handler:     ListRecentBlogs(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/blogs",
			Method:      http.MethodPost,
			Handler:     CreateBlog(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/blogs/:id",
			Method:      http.MethodPut,
			Handler:     UpdateBlog(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/blogs/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteBlog(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func SocialPosts(service tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/posts",
			Method:      http.MethodGet,
			Handler:     ListRecentPosts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/posts",
			Method:      http.MethodPost,
			Handler:     CreatePost(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/posts/:id",
			Method:      http.MethodPut,
			Handler:     UpdatePost(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/posts/:id",
			Method:      http.MethodDelete,
			Handler:     DeletePost(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func ActionItems(service tasking.Tasker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/action-items",
			Method:      http.MethodGet,
			Handler:     ListActionItems(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/action-items",
			Method:      http.MethodPost,
			Handler:     CreateActionItem(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/action-items/:id/toggle",
			Method:      http.MethodPost,
			Handler:     ToggleActionItem(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/action-items/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteActionItem(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
