package registry

import (
	"github.com/nfrund/learnhub/internal/activity"
	"github.com/nfrund/learnhub/internal/apiclient"
	"github.com/nfrund/learnhub/internal/pubsub"
	"github.com/nfrund/learnhub/internal/rendering"
)

// Core services set by the server before modules register.
var (
	APIClientKey   = Key[*apiclient.Client]("api.client")
	PublisherKey   = Key[pubsub.Publisher]("pubsub.publisher")
	SubscriberKey  = Key[pubsub.Subscriber]("pubsub.subscriber")
	RendererKey    = Key[rendering.Renderer]("rendering.renderer")
	ActivityLogKey = Key[*activity.Log]("activity.log")
)

// Services registered by modules.
var (
	CourseClientKey  = Key[*apiclient.CourseClient]("courses.client")
	PaymentClientKey = Key[*apiclient.PaymentClient]("payments.client")
)
