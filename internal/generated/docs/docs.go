// Package docs publishes the OpenAPI document to the swag registry so that
// echo-swagger can serve it under /swagger/doc.json.
package docs

import (
	"sync"

	"foodorder/internal/generated/servers"

	"github.com/swaggo/swag"
)

type openAPIDoc struct {
	json string
}

func (d openAPIDoc) ReadDoc() string {
	return d.json
}

var (
	registerOnce sync.Once
	registerErr  error
)

// Register makes the document available under swag.Name. Later calls return
// the outcome of the first one.
func Register() error {
	registerOnce.Do(func() {
		swagger, err := servers.GetSwagger()
		if err != nil {
			registerErr = err
			return
		}

		data, err := swagger.MarshalJSON()
		if err != nil {
			registerErr = err
			return
		}

		swag.Register(swag.Name, openAPIDoc{json: string(data)})
	})
	return registerErr
}
