package binder_test

import (
	"github.com/pmalmgren/constgeneric-field-limits/pkg/bounded"
)

type handleLimits struct{}

func (handleLimits) MinLen() int { return 3 }
func (handleLimits) MaxLen() int { return 16 }

type bioLimits struct{}

func (bioLimits) MinLen() int { return 0 }
func (bioLimits) MaxLen() int { return 20 }

type profileRequest struct {
	Handle bounded.Field[handleLimits]   `json:"handle" form:"handle" query:"handle"`
	Bio    bounded.Field[bioLimits]      `json:"bio" form:"bio" query:"bio"`
	Tags   []bounded.Field[handleLimits] `json:"tags" form:"tag" query:"tag"`
	Age    int                           `json:"age" form:"age" query:"age"`
	Public *bool                         `json:"public" form:"public" query:"public"`
	Secret string                        `json:"-" form:"-" query:"-"`
}
