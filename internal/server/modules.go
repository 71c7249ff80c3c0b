package server

import (
	"github.com/nfrund/learnhub/internal/module"
	"github.com/nfrund/learnhub/internal/modules/admin"
	"github.com/nfrund/learnhub/internal/modules/courses"
	"github.com/nfrund/learnhub/internal/modules/payments"
)

// AppModules returns the feature modules in registration order. Each is
// mounted under /<name>. admin reads the clients the other two register.
func AppModules() []module.Module {
	return []module.Module{
		courses.New(),
		payments.New(),
		admin.New(),
	}
}
