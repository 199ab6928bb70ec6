package utils

import (
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// LandlordOnlyMiddleware ensures the requester holds the landlord role.
func LandlordOnlyMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*AccessToken)
	if claims.Role != "landlord" {
		JSONError(ctx, iris.StatusForbidden, "forbidden", "landlord access required")
		return
	}
	ctx.Values().Set("ic", claims.IC)
	ctx.Next()
}

// TenantOnlyMiddleware ensures the requester holds the tenant role.
func TenantOnlyMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*AccessToken)
	if claims.Role != "tenant" {
		JSONError(ctx, iris.StatusForbidden, "forbidden", "tenant access required")
		return
	}
	ctx.Values().Set("ic", claims.IC)
	ctx.Next()
}
