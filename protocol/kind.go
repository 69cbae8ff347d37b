package protocol

import "strconv"

// Kind names a message type. the set is closed.
type Kind byte

const (
	KindStore Kind = iota + 1
	KindStoreUser
	KindChallenge
	KindRetrieve
	KindRetrieveUser
	KindDeleteUser
)

const numKinds = int(KindDeleteUser) + 1

var kindNames = [numKinds]string{
	KindStore:        "Store",
	KindStoreUser:    "StoreUser",
	KindChallenge:    "Challenge",
	KindRetrieve:     "Retrieve",
	KindRetrieveUser: "RetrieveUser",
	KindDeleteUser:   "DeleteUser",
}

func (k Kind) Valid() bool {
	return k >= KindStore && k <= KindDeleteUser
}

func (k Kind) String() string {
	if !k.Valid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindStore, KindStoreUser, KindChallenge,
		KindRetrieve, KindRetrieveUser, KindDeleteUser}
}
