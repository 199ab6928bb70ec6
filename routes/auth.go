package routes

import (
	"context"
	"encoding/json"
	"time"

	"rentsafe-server/models"
	"rentsafe-server/storage"
	"rentsafe-server/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

var bgContext = context.Background()

const (
	sessionKeyPrefix = "mydigitalid:session:"
	sessionTTL       = 10 * time.Minute
)

// verifiedProfile is the payload the MyDigital ID mock hands back after a
// successful verification.
type verifiedProfile struct {
	Name     string `json:"name"`
	IC       string `json:"ic"`
	Email    string `json:"email"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Verified bool   `json:"verified"`
}

// mockProfile is the canned identity the verification mock always returns.
var mockProfile = verifiedProfile{
	Name:     "NextNation",
	IC:       "000000-00-0000",
	Email:    "next_nation@gmail.com",
	Age:      30,
	Gender:   "male",
	Verified: true,
}

// LoginMyDigitalID starts a mock identity-verification attempt. Each attempt
// gets its own session key with a TTL, consumed exactly once by the
// callback, so abandoned logins expire instead of accumulating.
func LoginMyDigitalID(ctx iris.Context) {
	sessionID := uuid.NewString()

	payload, err := json.Marshal(mockProfile)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if err := storage.Redis.Set(bgContext, sessionKeyPrefix+sessionID, payload, sessionTTL).Err(); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	redirectURL := ctx.Request().URL.Scheme
	if redirectURL == "" {
		redirectURL = "http"
	}
	redirectURL += "://" + ctx.Host() + "/api/auth/mydigitalid/callback?session=" + sessionID

	ctx.JSON(iris.Map{"redirect_url": redirectURL})
}

// MyDigitalIDCallback consumes a verification session and upserts the
// verified Person. The GETDEL makes the session single-use.
func MyDigitalIDCallback(ctx iris.Context) {
	sessionID := ctx.URLParam("session")
	if sessionID == "" {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "session query parameter is required", ctx)
		return
	}

	payload, err := storage.Redis.GetDel(bgContext, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Verification session expired or already used", ctx)
		return
	}
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	var profile verifiedProfile
	if err := json.Unmarshal([]byte(payload), &profile); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if !profile.Verified {
		utils.CreateError(iris.StatusForbidden, "Verification Failed", "Identity could not be verified", ctx)
		return
	}

	var person models.Person
	res := storage.DB.Where("ic = ?", profile.IC).First(&person)
	if res.Error != nil {
		person = models.Person{
			IC:     profile.IC,
			Name:   profile.Name,
			Email:  profile.Email,
			Age:    profile.Age,
			Gender: profile.Gender,
		}
		if err := storage.DB.Create(&person).Error; err != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
	}

	tokenPair, tokenErr := utils.CreateTokenPair(person.ID, person.IC, person.Role)
	if tokenErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"person":       person,
		"accessToken":  string(tokenPair.AccessToken),
		"refreshToken": string(tokenPair.RefreshToken),
	})
}

type SetRoleInput struct {
	Role string `json:"role" validate:"required,oneof=tenant landlord"`
}

// SetRole assigns the person's role exactly once. Re-sending the same role
// is a no-op; changing an assigned role is rejected.
func SetRole(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input SetRoleInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var person models.Person
	if err := storage.DB.Where("ic = ?", claims.IC).First(&person).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Person not found", ctx)
		return
	}

	if person.Role != "" && person.Role != input.Role {
		utils.CreateError(iris.StatusConflict, "Conflict", "Role has already been assigned", ctx)
		return
	}

	if person.Role == "" {
		person.Role = input.Role
		if err := storage.DB.Save(&person).Error; err != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
	}

	ctx.JSON(person)
}

// GetPerson returns a verified person by IC.
func GetPerson(ctx iris.Context) {
	ic := ctx.Params().Get("ic")

	var person models.Person
	if err := storage.DB.Where("ic = ?", ic).First(&person).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Person not found", ctx)
		return
	}

	ctx.JSON(person)
}
