// Package port declares the boundaries between the engine and its environment.
package port

//go:generate mockery --name=Notification --output=mocks --outpkg=mocks --with-expecter
//go:generate mockery --name=Overlay --output=mocks --outpkg=mocks --with-expecter
//go:generate mockery --name=Navigator --output=mocks --outpkg=mocks --with-expecter
//go:generate mockery --name=SearchSuggestions --output=mocks --outpkg=mocks --with-expecter
//go:generate mockery --name=RecommendationView --output=mocks --outpkg=mocks --with-expecter
//go:generate mockery --name=WishlistView --output=mocks --outpkg=mocks --with-expecter
//go:generate mockery --name=Channel --output=mocks --outpkg=mocks --with-expecter
