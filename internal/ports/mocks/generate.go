//go:generate mockgen -source=../dish_repository.go  -destination=./mock_dish_repository.go  -package=mocks
//go:generate mockgen -source=../order_repository.go -destination=./mock_order_repository.go -package=mocks
//go:generate mockgen -source=../catalog_cache.go    -destination=./mock_catalog_cache.go    -package=mocks
//go:generate mockgen -source=../event_publisher.go  -destination=./mock_event_publisher.go  -package=mocks
//go:generate mockgen -source=../shop_state.go       -destination=./mock_shop_state.go       -package=mocks
//go:generate mockgen -source=../catalog_service.go  -destination=./mock_catalog_service.go  -package=mocks

package mocks
