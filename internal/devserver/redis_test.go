package devserver

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
)

func TestStoreCollection_AttributesCommandsToStores(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for _, tc := range []struct {
		name string
		cmd  redis.Cmder
		want string
	}{
		{
			name: "geo index write",
			cmd:  redis.NewStatusCmd(ctx, "geoadd", riderLocationKey, 36.8172, -1.2864, "rider-1"),
			want: "rider_locations",
		},
		{
			name: "geo index read",
			cmd:  redis.NewCmd(ctx, "geopos", riderLocationKey, "rider-1"),
			want: "rider_locations",
		},
		{
			name: "idempotency cache",
			cmd:  redis.NewStatusCmd(ctx, "set", idempotencyPrefix+"some-key", "{}"),
			want: "idempotency",
		},
		{
			name: "unrelated key",
			cmd:  redis.NewStringCmd(ctx, "get", "sessions:abc"),
			want: "redis",
		},
		{
			name: "keyless command",
			cmd:  redis.NewStatusCmd(ctx, "ping"),
			want: "redis",
		},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := storeCollection(tc.cmd); got != tc.want {
				t.Errorf("storeCollection(%v) = %q, want %q", tc.cmd.Args(), got, tc.want)
			}
		})
	}
}
