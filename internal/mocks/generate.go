package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/gallery --output domain/gallery --outpkg gallerymock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/performer --output domain/performer --outpkg performermock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/registration --output domain/registration --outpkg registrationmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/standing --output domain/standing --outpkg standingmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/match --output domain/match --outpkg matchmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/alert --output domain/alert --outpkg alertmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/visitor --output domain/visitor --outpkg visitormock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Locator --dir ../domain/visitor --output domain/visitor --outpkg visitormock --filename locator_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name ObjectStore --dir ../domain/media --output domain/media --outpkg mediamock --filename object_store_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name OrphanRepository --dir ../domain/media --output domain/media --outpkg mediamock --filename orphan_repository_mock.go
