package redis

// KeyPrefix namespaces every slot key written by Storage.
const KeyPrefix = "campaign-manager:slot:"

// SlotKey returns the Redis key holding slot.
func SlotKey(slot string) string {
	return KeyPrefix + slot
}
