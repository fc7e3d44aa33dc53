package aws

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/ebsight/ebsight/internal/models"
	"github.com/ebsight/ebsight/pkg/utils"
)

// EC2Client struct for EC2 client
type EC2Client struct {
	client *ec2.Client
	region string
}

// NewEC2Client creates a new EC2Client using the given region and profile
func NewEC2Client(ctx context.Context, region, profile string) (*EC2Client, error) {
	cfg, err := LoadConfig(ctx, region, profile)
	if err != nil {
		return nil, err
	}

	return &EC2Client{
		client: ec2.NewFromConfig(cfg),
		region: region,
	}, nil
}

// GetInstance returns basic information about a single EC2 instance
func (c *EC2Client) GetInstance(ctx context.Context, instanceID string) (models.InstanceInfo, error) {
	input := &ec2.DescribeInstancesInput{
		InstanceIds: []string{instanceID},
	}

	result, err := c.client.DescribeInstances(ctx, input)
	if err != nil {
		return models.InstanceInfo{}, fmt.Errorf("error describing instance %s: %w", instanceID, err)
	}

	if len(result.Reservations) == 0 || len(result.Reservations[0].Instances) == 0 {
		return models.InstanceInfo{}, fmt.Errorf("instance %s not found", instanceID)
	}

	instance := result.Reservations[0].Instances[0]

	info := models.InstanceInfo{
		InstanceID:   utils.SafeDeref(instance.InstanceId),
		Name:         utils.GetName(instance.Tags),
		InstanceType: string(instance.InstanceType),
		Region:       c.region,
		LaunchTime:   instance.LaunchTime,
	}
	if instance.Placement != nil {
		info.AvailabilityZone = utils.SafeDeref(instance.Placement.AvailabilityZone)
	}
	if instance.State != nil {
		info.State = string(instance.State.Name)
	}

	return info, nil
}

// GetAttachedVolumes returns all EBS volumes attached to an instance,
// including the device name each volume is attached as
func (c *EC2Client) GetAttachedVolumes(ctx context.Context, instanceID string) ([]models.VolumeInfo, error) {
	filter := types.Filter{
		Name:   aws.String("attachment.instance-id"),
		Values: []string{instanceID},
	}

	input := &ec2.DescribeVolumesInput{
		Filters: []types.Filter{filter},
	}

	result, err := c.client.DescribeVolumes(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("error querying volumes for instance %s: %w", instanceID, err)
	}

	volumes := []models.VolumeInfo{}

	for _, volume := range result.Volumes {
		volumeInfo := models.VolumeInfo{
			VolumeID:   utils.SafeDeref(volume.VolumeId),
			Name:       utils.GetName(volume.Tags),
			SizeGiB:    utils.SafeInt32(volume.Size),
			VolumeType: string(volume.VolumeType),
			State:      string(volume.State),
			Region:     c.region,
		}
		if volume.CreateTime != nil {
			volumeInfo.CreationTime = *volume.CreateTime
		}

		// Device name comes from the attachment to this instance
		for _, attachment := range volume.Attachments {
			if utils.SafeDeref(attachment.InstanceId) == instanceID {
				volumeInfo.DeviceName = utils.SafeDeref(attachment.Device)
				break
			}
		}

		volumes = append(volumes, volumeInfo)
	}

	// Stable report order regardless of API ordering
	sort.Slice(volumes, func(i, j int) bool {
		return volumes[i].DeviceName < volumes[j].DeviceName
	})

	return volumes, nil
}

// GetSnapshots returns the self-owned snapshots of a volume in
// chronological order
func (c *EC2Client) GetSnapshots(ctx context.Context, volumeID string) ([]models.SnapshotInfo, error) {
	filter := types.Filter{
		Name:   aws.String("volume-id"),
		Values: []string{volumeID},
	}

	input := &ec2.DescribeSnapshotsInput{
		Filters:  []types.Filter{filter},
		OwnerIds: []string{"self"},
	}

	snapshots := []models.SnapshotInfo{}

	paginator := ec2.NewDescribeSnapshotsPaginator(c.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error querying snapshots for volume %s: %w", volumeID, err)
		}

		for _, snapshot := range page.Snapshots {
			info := models.SnapshotInfo{
				SnapshotID:    utils.SafeDeref(snapshot.SnapshotId),
				VolumeID:      volumeID,
				FullSizeBytes: utils.SafeInt64(snapshot.FullSnapshotSizeInBytes),
				VolumeSizeGiB: utils.SafeInt32(snapshot.VolumeSize),
				Description:   utils.SafeDeref(snapshot.Description),
			}
			if snapshot.StartTime != nil {
				info.StartTime = *snapshot.StartTime
			}

			snapshots = append(snapshots, info)
		}
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].StartTime.Before(snapshots[j].StartTime)
	})

	return snapshots, nil
}
