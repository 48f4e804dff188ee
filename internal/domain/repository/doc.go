// Package repository declares the persistence boundaries of the engine.
package repository

//go:generate mockery --name=SearchHistoryRepository --output=mocks --outpkg=mocks --with-expecter
//go:generate mockery --name=WishlistRepository --output=mocks --outpkg=mocks --with-expecter
//go:generate mockery --name=CookieRepository --output=mocks --outpkg=mocks --with-expecter
//go:generate mockgen -destination=mocks/kvstore/mock_key_value_store.go -package=mock_kvstore . KeyValueStore
