package client

import "errors"

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrNoToken          = errors.New("no token: pass -token or -sign-key with -user")
	ErrNoUser           = errors.New("no user id to mint a token for")
	ErrStoneNeedsSphere = errors.New("-stone requires -sphere")
)
