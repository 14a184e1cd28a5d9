package configs

import (
	"log"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
)

type MidtransClients struct {
	Snap *snap.Client
	Core *coreapi.Client
}

// NewMidtransClients returns nil when no server key is configured so the
// payment endpoints can report themselves as unavailable.
func NewMidtransClients(env ENV) *MidtransClients {
	if env.MIDTRANS_SERVER_KEY == "" {
		log.Println("Midtrans server key not set, payment links disabled.")
		return nil
	}

	mEnv := midtrans.Sandbox
	if env.AppEnv == "production" {
		mEnv = midtrans.Production
	}

	var snapClient snap.Client
	snapClient.New(env.MIDTRANS_SERVER_KEY, mEnv)
	var coreClient coreapi.Client
	coreClient.New(env.MIDTRANS_SERVER_KEY, mEnv)

	midtrans.ClientKey = env.MIDTRANS_CLIENT_KEY
	midtrans.ServerKey = env.MIDTRANS_SERVER_KEY
	midtrans.Environment = mEnv
	log.Println("✅ Midtrans Snap and Core API clients initialized.")
	return &MidtransClients{Snap: &snapClient, Core: &coreClient}
}
