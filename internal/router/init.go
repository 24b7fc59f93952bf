package router

import (
	"github.com/kepl/map2-server/internal/application"
	"github.com/kepl/map2-server/internal/container"
	"github.com/kepl/map2-server/internal/domain/entity"
	"github.com/kepl/map2-server/internal/infrastructure/geocode"
	pginfra "github.com/kepl/map2-server/internal/infrastructure/postgres"
	handlers "github.com/kepl/map2-server/internal/interface/http"
	"github.com/kepl/map2-server/internal/router/modules"
	"github.com/kepl/map2-server/pkg/helpers"
)

// InitModules builds every repository, service and handler from the container
// singletons and registers the feature modules. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()
	rdb := container.GetRedis()
	jwt := container.GetJWT()

	users := pginfra.NewUserRepository(pool)
	busking := pginfra.NewBuskingRepository(pool)
	community := pginfra.NewCommunityRepository(pool)
	lessons := pginfra.NewLessonRepository(pool)
	businesses := pginfra.NewBusinessRepository(pool)
	realtime := pginfra.NewRealtimeEventRepository(pool)
	nayogi := pginfra.NewNayogiRepository(pool)
	places := pginfra.NewPlaceRepository(pool)
	posts := pginfra.NewPostRepository(pool)

	cookie := helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure)

	authSvc := application.NewAuthService(users, jwt, rdb, logger, container.GetRabbitPub(), cfg.MailSendEnabled)
	buskingSvc := application.NewBuskingService(users, busking)
	communitySvc := application.NewCommunityService(users, community)
	lessonSvc := application.NewLessonService(users, lessons)
	businessSvc := application.NewBusinessService(users, businesses)
	realtimeSvc := application.NewRealtimeEventService(users, realtime, businesses)
	nayogiSvc := application.NewNayogiService(users, nayogi, logger)
	placeSvc := application.NewPlaceService(users, places)
	postSvc := application.NewPostService(users, posts, logger, container.GetES(), cfg.ESPostsIndex)
	adminSvc := application.NewAdminService(users, busking, community, lessons, businesses, realtime, nayogi, places, posts)
	geocodingSvc := application.NewGeocodingService(
		geocode.NewNaverClient(cfg.NaverClientID, cfg.NaverClientSecret), rdb, logger)
	uploadSvc := application.NewUploadService(users, container.GetGCS(), cfg.GCSBucket)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, cookie, logger), jwt))
	r.Add(modules.NewListingModule(
		handlers.NewBuskingHandler(buskingSvc, logger),
		handlers.NewCommunityHandler(communitySvc, logger),
		handlers.NewLessonHandler(lessonSvc, logger),
		handlers.NewNayogiHandler(nayogiSvc, logger),
		jwt,
	))
	r.Add(modules.NewBusinessModule(
		handlers.NewBusinessHandler(businessSvc, logger),
		handlers.NewRealtimeHandler(realtimeSvc, logger),
		jwt,
	))
	r.Add(modules.NewPlaceModule(
		handlers.NewPlaceHandler(placeSvc, entity.PlaceGarden, logger),
		handlers.NewPlaceHandler(placeSvc, entity.PlaceHotspot, logger),
		users,
		jwt,
	))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, logger), jwt))
	r.Add(modules.NewAdminModule(handlers.NewAdminHandler(adminSvc, postSvc, logger), users, jwt))
	r.Add(modules.NewGeocodingModule(
		handlers.NewGeocodingHandler(geocodingSvc, logger),
		handlers.NewUploadHandler(uploadSvc, logger),
		jwt,
	))
}
