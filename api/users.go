package api

import (
	"net/http"

	"schedulink/user"
)

type getUsersResponse struct {
	Users []user.User `json:"users"`
	Count int         `json:"count"`
}

func (a *API) getUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := a.requestContext(r)
	defer cancel()

	userAccessor := user.NewAccessor(a.db)
	users, err := userAccessor.GetUsers(ctx)
	if err != nil {
		a.Error(w, r, http.StatusInternalServerError, err)
		return
	}
	if users == nil {
		users = []user.User{}
	}

	a.JSON(w, http.StatusOK, getUsersResponse{
		Users: users,
		Count: len(users),
	})
}
